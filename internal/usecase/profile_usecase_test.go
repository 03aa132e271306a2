package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkup/internal/domain/auth"
	"linkup/internal/domain/entity"
	apperrors "linkup/pkg/errors"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestIsCurrentUser(t *testing.T) {
	user := &entity.User{Provider: "google", ProviderID: "123"}

	tests := []struct {
		name      string
		principal *auth.Principal
		want      bool
	}{
		{"nil principal", nil, false},
		{"matching pair", &auth.Principal{Provider: "google", ProviderID: "123"}, true},
		{"different provider", &auth.Principal{Provider: "kakao", ProviderID: "123"}, false},
		{"different provider id", &auth.Principal{Provider: "google", ProviderID: "456"}, false},
		{"case differs", &auth.Principal{Provider: "Google", ProviderID: "123"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCurrentUser(user, tt.principal))
		})
	}
}

func newProfileFixture() (*ProfileUseCase, *entity.User) {
	user := &entity.User{
		ID:              "u1",
		Provider:        "google",
		ProviderID:      "123",
		Nickname:        "alice",
		Role:            entity.RoleMentor,
		ProfileImageURL: "https://img.example/alice.png",
		Interest:        entity.InterestDevelopment,
		Introduction:    "hi",
		ProfileTag:      "#golang",
	}

	areaRepo := &fakeAreaRepo{
		areas: map[int]*entity.Area{
			11: {ID: 11, AreaCode: 11, AreaName: "Seoul"},
		},
		sigungus: map[string]*entity.Sigungu{
			"11/110": {AreaCode: 11, SigunguCode: "110", SigunguName: "Jongno-gu"},
		},
	}

	return NewProfileUseCase(&fakeUserRepo{users: []*entity.User{user}}, areaRepo), user
}

func TestBuildProfileNilUser(t *testing.T) {
	uc, _ := newProfileFixture()

	_, err := uc.BuildProfile(context.Background(), nil, nil)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestBuildProfileWithoutArea(t *testing.T) {
	uc, user := newProfileFixture()
	user.AreaID = nil
	user.SigunguCode = strPtr("110")

	profile, err := uc.BuildProfile(context.Background(), user, nil)
	require.NoError(t, err)

	assert.Empty(t, profile.Area)
	assert.Empty(t, profile.Sigungu)
}

func TestBuildProfileAreaWithoutSigunguCode(t *testing.T) {
	uc, user := newProfileFixture()
	user.AreaID = intPtr(11)
	user.SigunguCode = nil

	profile, err := uc.BuildProfile(context.Background(), user, nil)
	require.NoError(t, err)

	assert.Equal(t, "Seoul", profile.Area)
	assert.Empty(t, profile.Sigungu)
}

func TestBuildProfileFullRegion(t *testing.T) {
	uc, user := newProfileFixture()
	user.AreaID = intPtr(11)
	user.SigunguCode = strPtr("110")

	profile, err := uc.BuildProfile(context.Background(), user, nil)
	require.NoError(t, err)

	assert.Equal(t, "Seoul", profile.Area)
	assert.Equal(t, "Jongno-gu", profile.Sigungu)
}

func TestBuildProfileUnknownSigunguDegrades(t *testing.T) {
	uc, user := newProfileFixture()
	user.AreaID = intPtr(11)
	user.SigunguCode = strPtr("999")

	profile, err := uc.BuildProfile(context.Background(), user, nil)
	require.NoError(t, err)

	assert.Equal(t, "Seoul", profile.Area)
	assert.Empty(t, profile.Sigungu)
}

func TestBuildProfileFields(t *testing.T) {
	uc, user := newProfileFixture()
	principal := &auth.Principal{Provider: "google", ProviderID: "123"}

	profile, err := uc.BuildProfile(context.Background(), user, principal)
	require.NoError(t, err)

	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "alice", profile.Nickname)
	assert.Equal(t, "MENTOR", profile.Role)
	assert.Equal(t, "Development", profile.Interest)
	assert.Equal(t, "#golang", profile.Tag)
	assert.True(t, profile.Me)
}

func TestGetProfileByNicknameNotFound(t *testing.T) {
	uc, _ := newProfileFixture()

	_, err := uc.GetProfileByNickname(context.Background(), "nobody", nil)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
