package model

// UserRecord is a single credential record.
// The JSON tags define the on-disk contract for the users file: an array of
// objects where "password" holds the hex SHA-256 digest of the plaintext.
// Records are immutable once created.
type UserRecord struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}
