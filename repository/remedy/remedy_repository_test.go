package remedy_test

import (
	"context"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/globalremedies/backend/model"
	remedyrepo "github.com/globalremedies/backend/repository/remedy"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// recordingMatcher accepts any query and keeps the SQL the repository
// actually generated so the test can assert on its shape.
type recordingMatcher struct {
	query string
}

func (m *recordingMatcher) Match(expectedSQL, actualSQL string) error {
	m.query = actualSQL
	return nil
}

func TestRemedySQL_List_FilterCombinations(t *testing.T) {
	tests := []struct {
		name        string
		filter      *model.RemedyFilter
		wantOrderBy int
		wantLimit   bool
	}{
		{
			name:   "no filter",
			filter: nil,
		},
		{
			name:        "country only",
			filter:      &model.RemedyFilter{Country: "India"},
			wantOrderBy: 1,
		},
		{
			name:        "trending only",
			filter:      &model.RemedyFilter{Trending: true},
			wantOrderBy: 1,
			wantLimit:   true,
		},
		{
			name:        "country and trending",
			filter:      &model.RemedyFilter{Country: "India", Trending: true},
			wantOrderBy: 1,
			wantLimit:   true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			matcher := &recordingMatcher{}
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
			assert.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery("remedies").WillReturnRows(sqlmock.NewRows([]string{"remedy_id"}))

			repo := remedyrepo.NewRemedyRepository(sqlx.NewDb(db, "mysql"))
			items, err := repo.List(context.Background(), 1, tt.filter)
			assert.NoError(t, err)
			assert.Empty(t, items)

			assert.Equal(t, tt.wantOrderBy, strings.Count(matcher.query, "ORDER BY"))
			if tt.wantLimit {
				assert.True(t, strings.HasSuffix(matcher.query, "LIMIT ?"))
			} else {
				assert.NotContains(t, matcher.query, "LIMIT")
			}
			if tt.wantOrderBy > 0 && tt.wantLimit {
				assert.Less(t, strings.Index(matcher.query, "ORDER BY"), strings.Index(matcher.query, "LIMIT"))
			}
		})
	}
}
