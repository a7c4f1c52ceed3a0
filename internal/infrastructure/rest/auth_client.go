package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

const authPath = "/api/auth"

// AuthClient implements ports.AuthClient against /api/auth.
type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registerRequest is the backend's registration wire shape. The role travels
// as a relation object and the e-mail under its Spanish key.
type registerRequest struct {
	Username       string         `json:"username"`
	Password       string         `json:"password"`
	Rol            domain.RoleRef `json:"rol"`
	NombreCompleto string         `json:"nombreCompleto"`
	Telefono       string         `json:"telefono"`
	Correo         string         `json:"correo"`
}

// Login exchanges credentials for a token. The token has appeared in several
// places over backend revisions: the envelope's data as a bare string, or a
// "token"/"jwt"/"accessToken" field; all are accepted.
func (c *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	p, err := c.do(ctx, http.MethodPost, authPath+"/login", nil, loginRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	if token := extractToken(p.data); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("login reply carried no token")
}

func extractToken(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		return token
	}
	var body struct {
		Token       string `json:"token"`
		Jwt         string `json:"jwt"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	for _, candidate := range []string{body.Token, body.Jwt, body.AccessToken} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Register creates a user account with the given role id.
func (c *AuthClient) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	req := registerRequest{
		Username:       input.Username,
		Password:       input.Password,
		Rol:            domain.RoleRef{ID: input.RoleID},
		NombreCompleto: input.NombreCompleto,
		Telefono:       input.Telefono,
		Correo:         input.Correo,
	}
	p, err := c.do(ctx, http.MethodPost, authPath+"/register", nil, req)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decodeOne(p, &user); err != nil {
		// Some revisions acknowledge without echoing the record.
		return nil, nil
	}
	return &user, nil
}

// ListUsers returns every registered user.
func (c *AuthClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	p, err := c.do(ctx, http.MethodGet, authPath, nil, nil)
	if err != nil {
		return nil, err
	}
	var users []domain.User
	decodeList(c.Client, p, &users)
	return users, nil
}
