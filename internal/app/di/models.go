package di

import (
	alumnientity "ccps_backend/internal/feature/alumni/domain/entity"
	appentity "ccps_backend/internal/feature/applications/domain/entity"
	authentity "ccps_backend/internal/feature/auth/domain/entity"
	jobentity "ccps_backend/internal/feature/jobs/domain/entity"
	profileentity "ccps_backend/internal/feature/profile/domain/entity"
	referralentity "ccps_backend/internal/feature/referrals/domain/entity"
	savedentity "ccps_backend/internal/feature/savedjobs/domain/entity"
	threadentity "ccps_backend/internal/feature/threads/domain/entity"
)

// Models lists every table AutoMigrate manages, parents before children.
func Models() []any {
	return []any{
		&authentity.User{},
		&authentity.RevokedToken{},
		&jobentity.Job{},
		&jobentity.Vote{},
		&appentity.Application{},
		&savedentity.SavedJob{},
		&alumnientity.Alumni{},
		&alumnientity.AlumniJob{},
		&referralentity.Referral{},
		&profileentity.StudentProfile{},
		&threadentity.Thread{},
		&threadentity.Comment{},
	}
}
