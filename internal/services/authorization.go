package services

import (
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/uuid"
)

// requireActor 校验调用者身份已认证。
func requireActor(actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return ErrUnauthenticated
	}
	return nil
}

// authorizeOwner 是所有作者专属操作共用的归属判定。
// 播放列表与动态的条件写入在 SQL 中以同一谓词（owner_id = actor）表达。
func authorizeOwner(ownerID, actorID uuid.UUID) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	if ownerID != actorID {
		return errors.Forbidden(ReasonNotOwner, "only the owner can modify this resource")
	}
	return nil
}
