package auth

import (
	"context"
)

type profileCtxKey struct{}

func WithProfile(ctx context.Context, profile *Profile) context.Context {
	return context.WithValue(ctx, profileCtxKey{}, profile)
}

// ProfileFromContext returns the admin admitted by the auth gate for the
// current request.
func ProfileFromContext(ctx context.Context) (*Profile, bool) {
	profile, ok := ctx.Value(profileCtxKey{}).(*Profile)
	return profile, ok && profile != nil
}
