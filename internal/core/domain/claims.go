package domain

import (
	"encoding/json"
	"time"
)

// Claims is the decoded payload of the backend's signed credential.
//
// The backend changed its token shape over time without migrating old
// tokens: the role may arrive as a single tag in "roles", as a list of tags
// in "authorities", or as the legacy numeric id reachable through several
// field aliases ("rol_id", "rolId", "rol", "role", either a number or an
// object with an "id"). All shapes are normalised into Role here, once,
// instead of being re-probed on every capability check.
type Claims struct {
	Subject   string
	Username  string
	Role      Role
	ExpiresAt int64 // seconds since epoch, 0 = no expiry
}

// bootstrapAdmin is the reserved username that is always treated as an
// administrator, even when the token carries no role claim at all. Kept for
// compatibility with tokens issued before the backend attached roles.
const bootstrapAdmin = "admin"

func (c *Claims) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = ClaimsFromMap(raw)
	return nil
}

// ClaimsFromMap normalises a decoded token payload into Claims.
func ClaimsFromMap(raw map[string]any) Claims {
	c := Claims{}
	c.Subject, _ = raw["sub"].(string)
	c.Username, _ = raw["username"].(string)
	if exp, ok := raw["exp"].(float64); ok {
		c.ExpiresAt = int64(exp)
	}
	c.Role = resolveRole(raw)
	if c.Role == "" && (c.Subject == bootstrapAdmin || c.Username == bootstrapAdmin) {
		c.Role = RoleAdmin
	}
	return c
}

// Name returns the best available display name for the subject.
func (c Claims) Name() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}

// Expired reports whether the claims carry an expiry in the past. Claims
// without an expiry never expire, matching the legacy console behaviour.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != 0 && time.Unix(c.ExpiresAt, 0).Before(now)
}

// resolveRole probes the historical role-claim shapes in priority order:
// string tag, tag list, then the numeric legacy aliases.
func resolveRole(raw map[string]any) Role {
	if tag, ok := raw["roles"].(string); ok {
		if r := RoleFromTag(tag); r != "" {
			return r
		}
	}
	if tags, ok := raw["authorities"].([]any); ok {
		for _, t := range tags {
			if tag, ok := t.(string); ok {
				if r := RoleFromTag(tag); r != "" {
					return r
				}
			}
		}
	}
	for _, alias := range []string{"rol_id", "rolId", "rol", "role"} {
		if id, ok := numericID(raw[alias]); ok {
			if r := RoleFromID(id); r != "" {
				return r
			}
		}
	}
	return ""
}

// numericID extracts a role id from a bare number or a {"id": n} object.
func numericID(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case map[string]any:
		if id, ok := val["id"].(float64); ok {
			return int(id), true
		}
	}
	return 0, false
}
