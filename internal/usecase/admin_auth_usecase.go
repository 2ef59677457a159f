package usecase

import (
	"golang.org/x/crypto/bcrypt"
)

// 管理画面は共有パスワード1つだけ。起動時にハッシュ化して持ち、
// 平文は保持しない。認証が通るとセッションの管理者フラグを立てる。
type AdminAuthUsecase struct {
	passwordHash []byte
}

func NewAdminAuthUsecase(adminPassword string) (*AdminAuthUsecase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminAuthUsecase{passwordHash: hash}, nil
}

func (u *AdminAuthUsecase) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}
