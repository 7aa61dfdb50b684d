package ports

// PasswordHasher hash adaptativo de contraseñas.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}
