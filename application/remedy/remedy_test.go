package remedy_test

import (
	"context"
	"errors"
	"testing"

	appremedy "github.com/globalremedies/backend/application/remedy"
	"github.com/globalremedies/backend/constant"
	categorymocks "github.com/globalremedies/backend/mocks/repository/category"
	remedymocks "github.com/globalremedies/backend/mocks/repository/remedy"
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

func TestRemedyApp_List(t *testing.T) {
	type fields struct {
		remedyRepo   *remedymocks.RemedyRepository
		categoryRepo *categorymocks.CategoryRepository
	}
	type args struct {
		ctx      context.Context
		viewerID uint64
		filter   *model.RemedyFilter
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantLen  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: approved remedies returned",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				viewerID: 1,
				filter:   &model.RemedyFilter{Country: "India"},
			},
			mockCall: func(f fields) {
				f.remedyRepo.
					On("List", mock.Anything, uint64(1), &model.RemedyFilter{Country: "India"}).
					Return([]model.RemedyDetail{
						{RemedyID: 10, RemedyTitle: "Ginger tea"},
						{RemedyID: 11, RemedyTitle: "Turmeric milk"},
					}, nil).
					Once()
			},
			wantLen: 2,
		},
		{
			name: "error: no matches yields not found",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				viewerID: 1,
				filter:   &model.RemedyFilter{Country: "Atlantis"},
			},
			mockCall: func(f fields) {
				f.remedyRepo.
					On("List", mock.Anything, uint64(1), &model.RemedyFilter{Country: "Atlantis"}).
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
			app := appremedy.NewRemedyApp(tt.fields.remedyRepo, tt.fields.categoryRepo)

			got, err := app.List(tt.args.ctx, tt.args.viewerID, tt.args.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if len(got) != tt.wantLen {
				t.Fatalf("List() returned %d remedies, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestRemedyApp_Create(t *testing.T) {
	type fields struct {
		remedyRepo   *remedymocks.RemedyRepository
		categoryRepo *categorymocks.CategoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.CreateRemedyRequest
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: remedy stored as pending",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			req: &model.CreateRemedyRequest{
				CategoryID:         3,
				Title:              "Honey lemon water",
				Ingredients:        "Honey, lemon, warm water",
				PreparationProcess: "Mix a spoon of honey and lemon juice into warm water",
				ApplicationProcess: "Drink twice daily",
				Benefits:           "Soothes sore throat",
				Photo:              "https://cdn.example.com/honey.jpg",
				Video:              "https://cdn.example.com/honey.mp4",
			},
			mockCall: func(f fields) {
				f.categoryRepo.
					On("GetByID", mock.Anything, uint64(3)).
					Return(&model.CategoryEntity{ID: 3, Name: "Cold & Flu"}, nil).
					Once()
				f.remedyRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.RemedyEntity) bool {
						return ent.UserID == 1 &&
							ent.CategoryID == 3 &&
							ent.Status == constant.RemedyStatusPending
					})).
					Return(uint64(42), nil).
					Once()
			},
			wantID: 42,
		},
		{
			name: "error: unknown category",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			req: &model.CreateRemedyRequest{
				CategoryID:         999,
				Title:              "Mystery brew",
				Ingredients:        "Unknown",
				PreparationProcess: "Unknown",
				ApplicationProcess: "Unknown",
				Benefits:           "Unknown",
				Photo:              "https://cdn.example.com/x.jpg",
				Video:              "https://cdn.example.com/x.mp4",
			},
			mockCall: func(f fields) {
				f.categoryRepo.
					On("GetByID", mock.Anything, uint64(999)).
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
			app := appremedy.NewRemedyApp(tt.fields.remedyRepo, tt.fields.categoryRepo)

			got, err := app.Create(context.Background(), 1, tt.req)
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

func TestRemedyApp_Update(t *testing.T) {
	title := "Improved ginger tea"

	type fields struct {
		remedyRepo   *remedymocks.RemedyRepository
		categoryRepo *categorymocks.CategoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		userID   uint64
		patch    *model.RemedyPatch
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owner updates title",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id:     10,
			userID: 1,
			patch:  &model.RemedyPatch{Title: &title},
			mockCall: func(f fields) {
				f.remedyRepo.
					On("Get", mock.Anything, uint64(10)).
					Return(&model.RemedyEntity{ID: 10, UserID: 1}, nil).
					Once()
				f.remedyRepo.
					On("Update", mock.Anything, uint64(10), uint64(1), &model.RemedyPatch{Title: &title}).
					Return(int64(1), nil).
					Once()
			},
		},
		{
			name: "error: non-owner forbidden",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id:     10,
			userID: 2,
			patch:  &model.RemedyPatch{Title: &title},
			mockCall: func(f fields) {
				f.remedyRepo.
					On("Get", mock.Anything, uint64(10)).
					Return(&model.RemedyEntity{ID: 10, UserID: 1}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: empty patch rejected",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id:      10,
			userID:  1,
			patch:   &model.RemedyPatch{},
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
			app := appremedy.NewRemedyApp(tt.fields.remedyRepo, tt.fields.categoryRepo)

			err := app.Update(context.Background(), tt.id, tt.userID, tt.patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestRemedyApp_Delete(t *testing.T) {
	type fields struct {
		remedyRepo   *remedymocks.RemedyRepository
		categoryRepo *categorymocks.CategoryRepository
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
			name: "success: admin deletes another user's remedy",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id:       10,
			userID:   99,
			userType: constant.UserTypeAdmin,
			mockCall: func(f fields) {
				f.remedyRepo.
					On("Get", mock.Anything, uint64(10)).
					Return(&model.RemedyEntity{ID: 10, UserID: 1}, nil).
					Once()
				f.remedyRepo.
					On("Delete", mock.Anything, uint64(10)).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: visitor cannot delete someone else's remedy",
			fields: fields{
				remedyRepo:   remedymocks.NewRemedyRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id:       10,
			userID:   2,
			userType: constant.UserTypeVisitor,
			mockCall: func(f fields) {
				f.remedyRepo.
					On("Get", mock.Anything, uint64(10)).
					Return(&model.RemedyEntity{ID: 10, UserID: 1}, nil).
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
			app := appremedy.NewRemedyApp(tt.fields.remedyRepo, tt.fields.categoryRepo)

			err := app.Delete(context.Background(), tt.id, tt.userID, tt.userType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
