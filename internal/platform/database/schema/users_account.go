package schema

// RefAccountTable represents the 'users.account' table
type RefAccountTable struct {
	Table        string
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Nickname     string
	BirthDate    string
	Active       string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// RefAccount is the schema definition for users.account
var RefAccount = RefAccountTable{
	Table:        "users.account",
	ID:           "id",
	Name:         "name",
	Email:        "email",
	PasswordHash: "passwordhash",
	Nickname:     "nickname",
	BirthDate:    "birthdate",
	Active:       "active",
	Role:         "role",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t RefAccountTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.PasswordHash, t.Nickname, t.BirthDate, t.Active, t.Role, t.CreatedAt, t.UpdatedAt}
}
