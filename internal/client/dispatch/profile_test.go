package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thoughts/internal/client/api"
	"thoughts/internal/client/models"
)

func strp(s string) *string { return &s }

func TestFetchProfile_Success(t *testing.T) {
	want := &models.Profile{
		User:  models.User{ID: "u1", Username: "bob"},
		Posts: []models.Post{{ID: "p1"}},
	}
	f := &fakeAPI{
		getProfileFn: func(userID string) (*models.Profile, error) { return want, nil },
	}
	env := newTestEnv(f)

	require.NoError(t, env.d.FetchProfile(context.Background(), "u1"))

	got := env.profile.Profile()
	require.NotNil(t, got)
	assert.Equal(t, "bob", got.Username)
	assert.Len(t, got.Posts, 1)
	assert.False(t, env.profile.Loading())
	assert.Empty(t, env.profile.Err())
}

func TestFetchProfile_LoadingTransitionsOncePerCall(t *testing.T) {
	env := newTestEnv(nil)
	f := &fakeAPI{
		getProfileFn: func(userID string) (*models.Profile, error) {
			assert.True(t, env.profile.Loading())
			return &models.Profile{User: models.User{ID: userID}}, nil
		},
	}
	env.d.api = f

	assert.False(t, env.profile.Loading())
	require.NoError(t, env.d.FetchProfile(context.Background(), "u1"))
	assert.False(t, env.profile.Loading())
	assert.Equal(t, 1, f.getProfileCalls)
}

func TestFetchProfile_FailureKeepsStaleProfile(t *testing.T) {
	stale := &models.Profile{User: models.User{ID: "u1", Username: "bob"}}
	f := &fakeAPI{
		getProfileFn: func(userID string) (*models.Profile, error) {
			return nil, &api.APIError{StatusCode: 500, Message: "boom"}
		},
	}
	env := newTestEnv(f)
	env.profile.SetProfile(stale)

	err := env.d.FetchProfile(context.Background(), "u1")
	require.Error(t, err)

	got := env.profile.Profile()
	require.NotNil(t, got)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "boom", env.profile.Err())
	assert.False(t, env.profile.Loading())
	assert.Equal(t, []string{"boom"}, env.notify.errors)
}

func TestFetchProfile_StaleResponseDiscarded(t *testing.T) {
	env := newTestEnv(nil, true)
	require.NoError(t, env.auth.Login(context.Background(), &models.User{ID: "u1", Token: "tok"}))

	f := &fakeAPI{
		getProfileFn: func(userID string) (*models.Profile, error) {
			// logout lands while the fetch is in flight
			require.NoError(t, env.auth.Logout(context.Background()))
			return &models.Profile{User: models.User{ID: userID}}, nil
		},
	}
	env.d.api = f

	require.NoError(t, env.d.FetchProfile(context.Background(), "u1"))
	assert.Nil(t, env.profile.Profile())
}

func TestUpdateUserInfo_NoChangesIsNoOp(t *testing.T) {
	f := &fakeAPI{}
	env := newTestEnv(f)
	user := &models.User{ID: "u1", Username: "bob", Bio: "hi", Token: "tok"}
	require.NoError(t, env.auth.Login(context.Background(), user))

	err := env.d.UpdateUserInfo(context.Background(), ProfileChanges{
		Username: strp("bob"),
		Bio:      strp("hi"),
	})
	require.NoError(t, err)

	assert.Zero(t, f.updateProfileCalls)
	assert.Nil(t, env.profile.Profile())
	assert.Empty(t, env.notify.successes)
}

func TestUpdateUserInfo_SendsOnlyChangedFields(t *testing.T) {
	f := &fakeAPI{
		updateProfileFn: func(userID string, fields map[string]string) (*models.Profile, error) {
			return &models.Profile{User: models.User{ID: userID, Username: fields["username"], Bio: "hi"}}, nil
		},
	}
	env := newTestEnv(f)
	require.NoError(t, env.auth.Login(context.Background(), &models.User{ID: "u1", Username: "bob", Bio: "hi", Token: "tok"}))

	err := env.d.UpdateUserInfo(context.Background(), ProfileChanges{
		Username: strp("robert"),
		Bio:      strp("hi"),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"username": "robert"}, f.lastProfileFields)

	// both stores and durable storage carry the new name
	user := env.auth.Current()
	require.NotNil(t, user)
	assert.Equal(t, "robert", user.Username)
	assert.Equal(t, "tok", user.Token)
	require.NotNil(t, env.repo.user)
	assert.Equal(t, "robert", env.repo.user.Username)
	p := env.profile.Profile()
	require.NotNil(t, p)
	assert.Equal(t, "robert", p.Username)
}

func TestUpdateUserInfo_Unauthenticated(t *testing.T) {
	f := &fakeAPI{}
	env := newTestEnv(f)

	err := env.d.UpdateUserInfo(context.Background(), ProfileChanges{Username: strp("x")})
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Zero(t, f.updateProfileCalls)
}

func TestUpdateProfileImage_MergesURL(t *testing.T) {
	f := &fakeAPI{}
	env := newTestEnv(f)
	require.NoError(t, env.auth.Login(context.Background(), &models.User{ID: "u1", Token: "tok"}))
	env.profile.SetProfile(&models.Profile{User: models.User{ID: "u1"}})

	err := env.d.UpdateProfileImage(context.Background(), "me.png", []byte{0x89, 0x50})
	require.NoError(t, err)

	assert.Equal(t, 1, f.uploadImageCalls)
	p := env.profile.Profile()
	require.NotNil(t, p)
	assert.Equal(t, "https://img/new.png", p.ProfileImage.URL)
	user := env.auth.Current()
	require.NotNil(t, user)
	assert.Equal(t, "https://img/new.png", user.ProfileImage.URL)
	require.NotNil(t, env.repo.user)
	assert.Equal(t, "https://img/new.png", env.repo.user.ProfileImage.URL)
}

func TestUpdateProfileImage_FailureLeavesStores(t *testing.T) {
	f := &fakeAPI{
		uploadImageFn: func(filename string, data []byte) (string, error) {
			return "", &api.APIError{StatusCode: 500, Message: "upload failed"}
		},
	}
	env := newTestEnv(f)
	require.NoError(t, env.auth.Login(context.Background(), &models.User{ID: "u1", Token: "tok"}))
	env.profile.SetProfile(&models.Profile{User: models.User{ID: "u1", ProfileImage: models.Image{URL: "old"}}})

	err := env.d.UpdateProfileImage(context.Background(), "me.png", []byte{1})
	require.Error(t, err)

	p := env.profile.Profile()
	require.NotNil(t, p)
	assert.Equal(t, "old", p.ProfileImage.URL)
	assert.Equal(t, "upload failed", env.profile.Err())
}
