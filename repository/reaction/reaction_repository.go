package reaction

import (
	"context"
	"fmt"

	"github.com/globalremedies/backend/constant"
	"github.com/jmoiron/sqlx"
)

// Kind describes one reaction target: where the parent rows live, which
// tables hold the per-user reaction rows, and the column naming the target.
// The six near-identical like/dislike variants collapse into this table.
type Kind struct {
	Name         string
	TargetTable  string
	TargetColumn string
	LikeTable    string
	DislikeTable string
}

var (
	KindRemedy = Kind{
		Name:         "remedy",
		TargetTable:  "remedies",
		TargetColumn: "remedy_id",
		LikeTable:    "likes",
		DislikeTable: "dislikes",
	}
	KindPost = Kind{
		Name:         "post",
		TargetTable:  "community_posts",
		TargetColumn: "post_id",
		LikeTable:    "post_likes",
		DislikeTable: "post_dislikes",
	}
	KindComment = Kind{
		Name:         "comment",
		TargetTable:  "community_comments",
		TargetColumn: "comment_id",
		LikeTable:    "comment_likes",
		DislikeTable: "comment_dislikes",
	}
)

func (k Kind) directionTable(direction constant.ReactionDirection) string {
	if direction == constant.ReactionLike {
		return k.LikeTable
	}
	return k.DislikeTable
}

func (k Kind) counterColumn(direction constant.ReactionDirection) string {
	if direction == constant.ReactionLike {
		return "likes"
	}
	return "dislikes"
}

type SQL struct {
	conn *sqlx.DB
}

type ReactionRepository interface {
	TargetExistsTx(ctx context.Context, tx *sqlx.Tx, kind Kind, targetID uint64) (bool, error)
	ExistsTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, userID, targetID uint64) (bool, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, userID, targetID uint64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, userID, targetID uint64) error
	BumpCountersTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, targetID uint64, transferred bool) error
	BookmarkExists(ctx context.Context, userID, remedyID uint64) (bool, error)
	InsertBookmark(ctx context.Context, userID, remedyID uint64) error
}

func NewReactionRepository(conn *sqlx.DB) ReactionRepository {
	return &SQL{conn: conn}
}

func (r *SQL) TargetExistsTx(ctx context.Context, tx *sqlx.Tx, kind Kind, targetID uint64) (bool, error) {
	var exists bool
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = ?)", kind.TargetTable)
	if err := tx.GetContext(ctx, &exists, q, targetID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SQL) ExistsTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, userID, targetID uint64) (bool, error) {
	var exists bool
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = ? AND %s = ?)",
		kind.directionTable(direction), kind.TargetColumn)
	if err := tx.GetContext(ctx, &exists, q, userID, targetID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, userID, targetID uint64) error {
	q := fmt.Sprintf("INSERT INTO %s (user_id, %s) VALUES (?, ?)",
		kind.directionTable(direction), kind.TargetColumn)
	_, err := tx.ExecContext(ctx, q, userID, targetID)
	return err
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, userID, targetID uint64) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE user_id = ? AND %s = ?",
		kind.directionTable(direction), kind.TargetColumn)
	_, err := tx.ExecContext(ctx, q, userID, targetID)
	return err
}

// BumpCountersTx adjusts the denormalized counters on the parent row in a
// single atomic statement. When transferred is set the opposite counter is
// decremented in the same statement, so likes+dislikes moves by exactly one
// net reaction.
func (r *SQL) BumpCountersTx(ctx context.Context, tx *sqlx.Tx, kind Kind, direction constant.ReactionDirection, targetID uint64, transferred bool) error {
	col := kind.counterColumn(direction)
	var q string
	if transferred {
		opposite := "dislikes"
		if col == "dislikes" {
			opposite = "likes"
		}
		q = fmt.Sprintf("UPDATE %s SET %s = %s + 1, %s = %s - 1 WHERE id = ?",
			kind.TargetTable, col, col, opposite, opposite)
	} else {
		q = fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE id = ?", kind.TargetTable, col, col)
	}
	_, err := tx.ExecContext(ctx, q, targetID)
	return err
}

func (r *SQL) BookmarkExists(ctx context.Context, userID, remedyID uint64) (bool, error) {
	var exists bool
	err := r.conn.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM bookmarks WHERE user_id = ? AND remedy_id = ?)",
		userID, remedyID)
	return exists, err
}

func (r *SQL) InsertBookmark(ctx context.Context, userID, remedyID uint64) error {
	_, err := r.conn.ExecContext(ctx,
		"INSERT INTO bookmarks (user_id, remedy_id) VALUES (?, ?)", userID, remedyID)
	return err
}
