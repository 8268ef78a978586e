package reaction

import (
	"context"
	stderrors "errors"

	"github.com/globalremedies/backend/constant"
	reactionrepo "github.com/globalremedies/backend/repository/reaction"
	txrepo "github.com/globalremedies/backend/repository/tx"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQL error 1062, raised when an insert violates a unique key.
const mysqlDupEntry = 1062

// isDupEntry reports whether err is a unique-key violation. Two concurrent
// reactions from the same user can both pass the existence check; the unique
// (user, target) key makes the loser fail here instead.
func isDupEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry
}

type ReactionApp interface {
	React(ctx context.Context, kind reactionrepo.Kind, direction constant.ReactionDirection, userID, targetID uint64) error
	Bookmark(ctx context.Context, userID, remedyID uint64) error
}

type ReactionAppImpl struct {
	reactionRepo reactionrepo.ReactionRepository
	txRepo       txrepo.TxRepository
}

func NewReactionApp(reactionRepo reactionrepo.ReactionRepository, txRepo txrepo.TxRepository) ReactionApp {
	return &ReactionAppImpl{
		reactionRepo: reactionRepo,
		txRepo:       txRepo,
	}
}

// React records a like or dislike. A repeated reaction in the same direction
// is rejected; a reaction in the opposite direction is transferred, so the
// two counters move together in one statement and never drift.
func (s *ReactionAppImpl) React(ctx context.Context, kind reactionrepo.Kind, direction constant.ReactionDirection, userID, targetID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[React] err txRepo.BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	committed := false
	defer func() {
		if !committed {
			if err := s.txRepo.RollbackTx(tx); err != nil {
				logger.Error("[React] err txRepo.RollbackTx", zap.String("error", err.Error()))
			}
		}
	}()

	exists, err := s.reactionRepo.TargetExistsTx(ctx, tx, kind, targetID)
	if err != nil {
		logger.Error("[React] err reactionRepo.TargetExistsTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	already, err := s.reactionRepo.ExistsTx(ctx, tx, kind, direction, userID, targetID)
	if err != nil {
		logger.Error("[React] err reactionRepo.ExistsTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if already {
		if direction == constant.ReactionLike {
			return errors.SetCustomError(constant.ErrAlreadyLiked)
		}
		return errors.SetCustomError(constant.ErrAlreadyDisliked)
	}

	opposite := constant.ReactionDislike
	if direction == constant.ReactionDislike {
		opposite = constant.ReactionLike
	}

	transferred, err := s.reactionRepo.ExistsTx(ctx, tx, kind, opposite, userID, targetID)
	if err != nil {
		logger.Error("[React] err reactionRepo.ExistsTx opposite", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.reactionRepo.InsertTx(ctx, tx, kind, direction, userID, targetID); err != nil {
		if isDupEntry(err) {
			if direction == constant.ReactionLike {
				return errors.SetCustomError(constant.ErrAlreadyLiked)
			}
			return errors.SetCustomError(constant.ErrAlreadyDisliked)
		}
		logger.Error("[React] err reactionRepo.InsertTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if transferred {
		if err := s.reactionRepo.DeleteTx(ctx, tx, kind, opposite, userID, targetID); err != nil {
			logger.Error("[React] err reactionRepo.DeleteTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.reactionRepo.BumpCountersTx(ctx, tx, kind, direction, targetID, transferred); err != nil {
		logger.Error("[React] err reactionRepo.BumpCountersTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[React] err txRepo.CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return nil
}

// Bookmark is one way: saving twice is an error and there is no unsave.
func (s *ReactionAppImpl) Bookmark(ctx context.Context, userID, remedyID uint64) error {
	exists, err := s.reactionRepo.BookmarkExists(ctx, userID, remedyID)
	if err != nil {
		logger.Error("[Bookmark] err reactionRepo.BookmarkExists", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return errors.SetCustomError(constant.ErrAlreadyBookmarked)
	}

	if err := s.reactionRepo.InsertBookmark(ctx, userID, remedyID); err != nil {
		if isDupEntry(err) {
			return errors.SetCustomError(constant.ErrAlreadyBookmarked)
		}
		logger.Error("[Bookmark] err reactionRepo.InsertBookmark", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}
