package review_test

import (
	"context"
	"errors"
	"testing"

	appreview "github.com/globalremedies/backend/application/review"
	"github.com/globalremedies/backend/constant"
	remedymocks "github.com/globalremedies/backend/mocks/repository/remedy"
	reviewmocks "github.com/globalremedies/backend/mocks/repository/review"
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

func TestReviewApp_Create(t *testing.T) {
	type fields struct {
		reviewRepo *reviewmocks.ReviewRepository
		remedyRepo *remedymocks.RemedyRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.CreateReviewRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first review for a remedy",
			fields: fields{
				reviewRepo: reviewmocks.NewReviewRepository(t),
				remedyRepo: remedymocks.NewRemedyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateReviewRequest{
					RemedyID:    10,
					Rating:      4.5,
					Review:      "Cleared my cough in two days",
					ReviewTitle: "Worked well",
				},
			},
			mockCall: func(f fields) {
				f.remedyRepo.
					On("Get", mock.Anything, uint64(10)).
					Return(&model.RemedyEntity{ID: 10, Status: constant.RemedyStatusApproved}, nil).
					Once()
				f.reviewRepo.
					On("Exists", mock.Anything, uint64(10), uint64(1)).
					Return(false, nil).
					Once()
				f.reviewRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ReviewEntity) bool {
						return ent.RemedyID == 10 && ent.UserID == 1 && ent.Rating == 4.5
					})).
					Return(uint64(100), nil).
					Once()
			},
			wantID: 100,
		},
		{
			name: "error: second review for the same remedy conflicts",
			fields: fields{
				reviewRepo: reviewmocks.NewReviewRepository(t),
				remedyRepo: remedymocks.NewRemedyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateReviewRequest{
					RemedyID:    10,
					Rating:      3,
					Review:      "Changed my mind",
					ReviewTitle: "Again",
				},
			},
			mockCall: func(f fields) {
				f.remedyRepo.
					On("Get", mock.Anything, uint64(10)).
					Return(&model.RemedyEntity{ID: 10}, nil).
					Once()
				f.reviewRepo.
					On("Exists", mock.Anything, uint64(10), uint64(1)).
					Return(true, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyReviewed,
		},
		{
			name: "error: remedy does not exist",
			fields: fields{
				reviewRepo: reviewmocks.NewReviewRepository(t),
				remedyRepo: remedymocks.NewRemedyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req: &model.CreateReviewRequest{
					RemedyID:    999,
					Rating:      5,
					Review:      "Great",
					ReviewTitle: "Great",
				},
			},
			mockCall: func(f fields) {
				f.remedyRepo.
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
			app := appreview.NewReviewApp(tt.fields.reviewRepo, tt.fields.remedyRepo)

			got, err := app.Create(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got != tt.wantID {
				t.Fatalf("Create() = %d, want %d", got, tt.wantID)
			}
		})
	}
}

func TestReviewApp_Update(t *testing.T) {
	rating := 2.0

	type fields struct {
		reviewRepo *reviewmocks.ReviewRepository
		remedyRepo *remedymocks.RemedyRepository
	}
	type args struct {
		ctx    context.Context
		id     uint64
		userID uint64
		patch  *model.ReviewPatch
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owner updates rating",
			fields: fields{
				reviewRepo: reviewmocks.NewReviewRepository(t),
				remedyRepo: remedymocks.NewRemedyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				id:     100,
				userID: 1,
				patch:  &model.ReviewPatch{Rating: &rating},
			},
			mockCall: func(f fields) {
				f.reviewRepo.
					On("Get", mock.Anything, uint64(100)).
					Return(&model.ReviewEntity{ID: 100, UserID: 1}, nil).
					Once()
				f.reviewRepo.
					On("Update", mock.Anything, uint64(100), &model.ReviewPatch{Rating: &rating}).
					Return(int64(1), nil).
					Once()
			},
		},
		{
			name: "error: non-owner cannot update",
			fields: fields{
				reviewRepo: reviewmocks.NewReviewRepository(t),
				remedyRepo: remedymocks.NewRemedyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				id:     100,
				userID: 2,
				patch:  &model.ReviewPatch{Rating: &rating},
			},
			mockCall: func(f fields) {
				f.reviewRepo.
					On("Get", mock.Anything, uint64(100)).
					Return(&model.ReviewEntity{ID: 100, UserID: 1}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: empty patch",
			fields: fields{
				reviewRepo: reviewmocks.NewReviewRepository(t),
				remedyRepo: remedymocks.NewRemedyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				id:     100,
				userID: 1,
				patch:  &model.ReviewPatch{},
			},
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
			app := appreview.NewReviewApp(tt.fields.reviewRepo, tt.fields.remedyRepo)

			err := app.Update(tt.args.ctx, tt.args.id, tt.args.userID, tt.args.patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
