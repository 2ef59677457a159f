package usecase_test

import (
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuthUsecase_VerifyPassword(t *testing.T) {
	uc, err := usecase.NewAdminAuthUsecase("adminpass")
	assert.NoError(t, err)

	assert.True(t, uc.VerifyPassword("adminpass"))
	assert.False(t, uc.VerifyPassword("wrong"))
	assert.False(t, uc.VerifyPassword(""))
	//大文字小文字は区別する
	assert.False(t, uc.VerifyPassword("AdminPass"))
}
