package community_test

import (
	"context"
	"errors"
	"testing"

	appcommunity "github.com/globalremedies/backend/application/community"
	"github.com/globalremedies/backend/constant"
	commentmocks "github.com/globalremedies/backend/mocks/repository/comment"
	postmocks "github.com/globalremedies/backend/mocks/repository/post"
	"github.com/globalremedies/backend/model"
	cerr "github.com/globalremedies/backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestCommunityApp_CreateComment(t *testing.T) {
	type fields struct {
		postRepo    *postmocks.PostRepository
		commentRepo *commentmocks.CommentRepository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   uint64
		req      *model.CreateCommentRequest
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: comment on existing post",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			userID: 1,
			req:    &model.CreateCommentRequest{PostID: 5, Comment: "Tried this, it helped"},
			mockCall: func(f fields) {
				f.postRepo.
					On("Get", mock.Anything, uint64(5)).
					Return(&model.PostEntity{ID: 5, UserID: 2}, nil).
					Once()
				f.commentRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.CommentEntity) bool {
						return ent.PostID == 5 && ent.UserID == 1 && ent.Comment == "Tried this, it helped"
					})).
					Return(uint64(50), nil).
					Once()
			},
			wantID: 50,
		},
		{
			name: "error: parent post missing",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			userID: 1,
			req:    &model.CreateCommentRequest{PostID: 999, Comment: "Hello?"},
			mockCall: func(f fields) {
				f.postRepo.
					On("Get", mock.Anything, uint64(999)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcommunity.NewCommunityApp(tt.fields.postRepo, tt.fields.commentRepo)

			got, err := app.CreateComment(context.Background(), tt.userID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got != tt.wantID {
				t.Fatalf("CreateComment() = %d, want %d", got, tt.wantID)
			}
		})
	}
}

func TestCommunityApp_UpdatePost(t *testing.T) {
	title := "Edited title"

	type fields struct {
		postRepo    *postmocks.PostRepository
		commentRepo *commentmocks.CommentRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		userID   uint64
		patch    *model.PostPatch
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owner edits post",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:     5,
			userID: 1,
			patch:  &model.PostPatch{Title: &title},
			mockCall: func(f fields) {
				f.postRepo.
					On("Get", mock.Anything, uint64(5)).
					Return(&model.PostEntity{ID: 5, UserID: 1}, nil).
					Once()
				f.postRepo.
					On("Update", mock.Anything, uint64(5), &model.PostPatch{Title: &title}).
					Return(int64(1), nil).
					Once()
			},
		},
		{
			name: "error: non-owner forbidden",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:     5,
			userID: 2,
			patch:  &model.PostPatch{Title: &title},
			mockCall: func(f fields) {
				f.postRepo.
					On("Get", mock.Anything, uint64(5)).
					Return(&model.PostEntity{ID: 5, UserID: 1}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: empty patch rejected",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:      5,
			userID:  1,
			patch:   &model.PostPatch{},
			wantErr: true,
			errCode: constant.ErrNoUpdateFields,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcommunity.NewCommunityApp(tt.fields.postRepo, tt.fields.commentRepo)

			err := app.UpdatePost(context.Background(), tt.id, tt.userID, tt.patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdatePost() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestCommunityApp_GetComment(t *testing.T) {
	type fields struct {
		postRepo    *postmocks.PostRepository
		commentRepo *commentmocks.CommentRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		userID   uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owner reads their comment",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:     50,
			userID: 1,
			mockCall: func(f fields) {
				f.commentRepo.
					On("Get", mock.Anything, uint64(50)).
					Return(&model.CommentEntity{ID: 50, UserID: 1, Comment: "ginger tea helps"}, nil).
					Once()
			},
		},
		{
			name: "error: comment belongs to someone else",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:     50,
			userID: 2,
			mockCall: func(f fields) {
				f.commentRepo.
					On("Get", mock.Anything, uint64(50)).
					Return(&model.CommentEntity{ID: 50, UserID: 1}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: comment missing",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:     404,
			userID: 1,
			mockCall: func(f fields) {
				f.commentRepo.
					On("Get", mock.Anything, uint64(404)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcommunity.NewCommunityApp(tt.fields.postRepo, tt.fields.commentRepo)

			got, err := app.GetComment(context.Background(), tt.id, tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got == nil || got.ID != tt.id {
				t.Fatalf("GetComment() = %+v, want comment %d", got, tt.id)
			}
		})
	}
}

func TestCommunityApp_DeleteComment(t *testing.T) {
	type fields struct {
		postRepo    *postmocks.PostRepository
		commentRepo *commentmocks.CommentRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		userID   uint64
		userType string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: admin removes a flagged comment",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:       50,
			userID:   99,
			userType: constant.UserTypeAdmin,
			mockCall: func(f fields) {
				f.commentRepo.
					On("Get", mock.Anything, uint64(50)).
					Return(&model.CommentEntity{ID: 50, UserID: 1}, nil).
					Once()
				f.commentRepo.
					On("Delete", mock.Anything, uint64(50)).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: visitor cannot remove someone else's comment",
			fields: fields{
				postRepo:    postmocks.NewPostRepository(t),
				commentRepo: commentmocks.NewCommentRepository(t),
			},
			id:       50,
			userID:   2,
			userType: constant.UserTypeVisitor,
			mockCall: func(f fields) {
				f.commentRepo.
					On("Get", mock.Anything, uint64(50)).
					Return(&model.CommentEntity{ID: 50, UserID: 1}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcommunity.NewCommunityApp(tt.fields.postRepo, tt.fields.commentRepo)

			err := app.DeleteComment(context.Background(), tt.id, tt.userID, tt.userType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
