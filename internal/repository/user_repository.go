package repository

import (
	"context"

	"cognicart/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//メールの登録済み判定（signupの重複チェック）
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ユーザー情報の更新
	Update(ctx context.Context, user *model.User) error
}
