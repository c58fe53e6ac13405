package domain

import "strings"

// UserRole distinguishes regular accounts from superusers.
type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleSuperuser UserRole = "superuser"
)

// DefaultAvatarURL is used when an account has no avatar of its own.
const DefaultAvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"

// User is the domain model for dashboard accounts. JSON tags follow the
// persisted-state contract of the `users` collection.
type User struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Avatar       string   `json:"avatar"`
	Role         UserRole `json:"role"`
	LastLogin    string   `json:"lastLogin"`
	IsActive     bool     `json:"isActive"`
	PasswordHash string   `json:"passwordHash,omitempty"`
}

// IsSuperuser reports whether the account carries the superuser role.
func (u User) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}

// Active treats superusers as always active regardless of the stored flag.
func (u User) Active() bool {
	return u.IsActive || u.IsSuperuser()
}

// Users is the full account collection as persisted under the `users` key.
// Derivations return fresh slices and leave the receiver untouched.
type Users []User

// Filter applies search, role and status filters in sequence. The search term
// matches name or email case-insensitively; "all" passes a stage through.
func (us Users) Filter(search, role, status string) Users {
	out := make(Users, 0, len(us))
	term := strings.ToLower(search)
	for _, u := range us {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		if role != "" && role != "all" && string(u.Role) != role {
			continue
		}
		if status != "" && status != "all" {
			wantActive := status == "active"
			if u.IsActive != wantActive {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

// ToggleRole flips user<->superuser for the matching record. Missing ids are
// a silent no-op.
func (us Users) ToggleRole(id int64) Users {
	out := make(Users, len(us))
	copy(out, us)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if out[i].Role == RoleSuperuser {
			out[i].Role = RoleUser
		} else {
			out[i].Role = RoleSuperuser
		}
	}
	return out
}

// ToggleActive flips the active flag unless the target is a superuser;
// superusers are never deactivatable through this path.
func (us Users) ToggleActive(id int64) Users {
	out := make(Users, len(us))
	copy(out, us)
	for i := range out {
		if out[i].ID == id && !out[i].IsSuperuser() {
			out[i].IsActive = !out[i].IsActive
		}
	}
	return out
}

// Replace swaps the record matching updated.ID wholesale. Missing ids are a
// silent no-op.
func (us Users) Replace(updated User) Users {
	out := make(Users, len(us))
	copy(out, us)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}

// FindByID returns the matching record.
func (us Users) FindByID(id int64) (User, bool) {
	for _, u := range us {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindByEmail matches the address case-insensitively.
func (us Users) FindByEmail(email string) (User, bool) {
	for _, u := range us {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}

// NextID yields max(id)+1. Stable under deletions, unlike length-based ids.
func (us Users) NextID() int64 {
	var max int64
	for _, u := range us {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
