package interfaces

type TokenIssuer interface {
	GenerateToken(userID uint) (string, error)
}
