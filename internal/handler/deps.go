package handler

import (
	"context"

	"puchmatch/internal/app/match"
	"puchmatch/internal/app/profile"
	"puchmatch/internal/configs"
)

// ProfileDirectory is the slice of the profile collaborator the handlers
// consume. Satisfied by *profile.Directory; narrowed to an interface so
// handler tests can stub it.
type ProfileDirectory interface {
	Upsert(ctx context.Context, p profile.Profile) error
	FindCandidates(ctx context.Context, userID string) ([]profile.Candidate, error)
}

type AppDeps struct {
	Engine   *match.Engine
	Config   *configs.AppConfig
	Profiles ProfileDirectory
}
