package usecase

import (
	"context"

	"linkup/internal/domain/auth"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/repository"
	"linkup/pkg/errors"
	"linkup/pkg/logger"
)

type ProfileUseCase struct {
	userRepo repository.UserRepository
	areaRepo repository.AreaRepository
}

func NewProfileUseCase(userRepo repository.UserRepository, areaRepo repository.AreaRepository) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo: userRepo,
		areaRepo: areaRepo,
	}
}

// IsCurrentUser reports whether the viewed profile belongs to the caller.
// A nil principal (unauthenticated viewer) is never the current user. The
// comparison is exact and case-sensitive on the (provider, providerId) pair.
func IsCurrentUser(user *entity.User, principal *auth.Principal) bool {
	if principal == nil {
		return false
	}

	logger.Debug("principal provider=%s providerId=%s", principal.Provider, principal.ProviderID)
	logger.Debug("profile provider=%s providerId=%s", user.Provider, user.ProviderID)

	return principal.Provider == user.Provider && principal.ProviderID == user.ProviderID
}

// BuildProfile assembles the profile page for a user. Region and sub-region
// resolution degrade to empty display fields on any miss; only a missing
// user is fatal.
func (uc *ProfileUseCase) BuildProfile(ctx context.Context, user *entity.User, principal *auth.Principal) (*entity.ProfilePage, error) {
	if user == nil {
		return nil, errors.NotFound("Profile", nil)
	}

	var areaName, sigunguName string
	if user.AreaID != nil {
		area, err := uc.areaRepo.GetByID(ctx, *user.AreaID)
		if err != nil {
			logger.Warn("area lookup failed for area %d: %v", *user.AreaID, err)
		}
		if area != nil {
			areaName = area.AreaName

			// Sub-region needs both the resolved area and a sigungu code.
			if user.SigunguCode != nil {
				sigungu, err := uc.areaRepo.GetSigungu(ctx, area.AreaCode, *user.SigunguCode)
				if err != nil {
					logger.Warn("sigungu lookup failed for (%d, %s): %v", area.AreaCode, *user.SigunguCode, err)
				}
				if sigungu != nil {
					sigunguName = sigungu.SigunguName
				}
			}
		}
	}

	return &entity.ProfilePage{
		ID:              user.ID,
		Nickname:        user.Nickname,
		ProfileImageURL: user.ProfileImageURL,
		Role:            string(user.Role),
		Tag:             user.ProfileTag,
		Interest:        user.Interest.DisplayName(),
		Area:            areaName,
		Sigungu:         sigunguName,
		Introduction:    user.Introduction,
		Me:              IsCurrentUser(user, principal),
	}, nil
}

// GetProfileByNickname resolves a nickname and assembles the profile page.
func (uc *ProfileUseCase) GetProfileByNickname(ctx context.Context, nickname string, principal *auth.Principal) (*entity.ProfilePage, error) {
	user, err := uc.userRepo.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	return uc.BuildProfile(ctx, user, principal)
}
