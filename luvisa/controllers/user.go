// luvisa/controllers/user.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"luvisa/luvisa/persona"
	"luvisa/luvisa/sources/psql/dao"
	"luvisa/luvisa/sources/storage"
	"luvisa/luvisa/utils/types"
)

var (
	ErrNoAvatar           = errors.New("avatar not found")
	ErrStorageUnavailable = errors.New("avatar storage unavailable")
)

const defaultStatusMessage = "Hey there! I’m using Luvisa 💗"

type UserController struct {
	userDAO *dao.UserDAO
	avatars *storage.AvatarStore // nil when object storage is down
	persona persona.Persona
}

func NewUserController(userDAO *dao.UserDAO, avatars *storage.AvatarStore, p persona.Persona) *UserController {
	return &UserController{userDAO: userDAO, avatars: avatars, persona: p}
}

func (c *UserController) GetProfile(ctx context.Context, id int) (*types.Profile, error) {
	user, err := c.userDAO.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	displayName := strings.SplitN(user.Email, "@", 2)[0]
	if user.DisplayName != nil && *user.DisplayName != "" {
		displayName = *user.DisplayName
	}
	status := defaultStatusMessage
	if user.StatusMessage != nil && *user.StatusMessage != "" {
		status = *user.StatusMessage
	}
	var avatarURL *string
	if user.AvatarKey != nil {
		url := fmt.Sprintf("/users/avatar/%d", user.ID)
		avatarURL = &url
	}

	return &types.Profile{
		Email:       user.Email,
		DisplayName: displayName,
		Avatar:      avatarURL,
		Status:      status,
	}, nil
}

// UpdateProfile updates the text fields and, when avatarData is non-empty,
// replaces the stored picture. A too-large picture fails the picture update
// only; text changes are already saved at that point.
func (c *UserController) UpdateProfile(ctx context.Context, id int, displayName, status string, avatarData []byte, avatarContentType string) (*types.Profile, error) {
	user, err := c.userDAO.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if displayName != "" {
		user.DisplayName = &displayName
	}
	if status != "" {
		user.StatusMessage = &status
	}
	if err := c.userDAO.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if len(avatarData) > 0 {
		if c.avatars == nil {
			return nil, ErrStorageUnavailable
		}
		key, err := c.avatars.Upload(ctx, id, avatarData, avatarContentType)
		if err != nil {
			return nil, err
		}
		user.AvatarKey = &key
		user.AvatarContentType = &avatarContentType
		if err := c.userDAO.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return c.GetProfile(ctx, id)
}

// GetAvatar returns the raw picture bytes and content type for a user.
func (c *UserController) GetAvatar(ctx context.Context, id int) ([]byte, string, error) {
	user, err := c.userDAO.GetUserByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.AvatarKey == nil {
		return nil, "", ErrNoAvatar
	}
	if c.avatars == nil {
		return nil, "", ErrStorageUnavailable
	}
	data, err := c.avatars.Get(ctx, *user.AvatarKey)
	if err != nil {
		return nil, "", err
	}
	contentType := "application/octet-stream"
	if user.AvatarContentType != nil {
		contentType = *user.AvatarContentType
	}
	return data, contentType, nil
}

// CompanionProfile is the fixed profile card for the companion itself.
func (c *UserController) CompanionProfile() types.Profile {
	avatar := c.persona.CardAvatar
	return types.Profile{
		Email:       c.persona.CardEmail,
		DisplayName: c.persona.CardName,
		Avatar:      &avatar,
		Status:      c.persona.CardStatus,
	}
}
