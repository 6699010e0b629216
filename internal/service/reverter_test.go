package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/internal/service/mocks"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	uowmocks "github.com/fsdevblog/ppob-ledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ReverterTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockTX   *uowmocks.MockTX
	mockRepo *mocks.MockInventoryRepository
	reverter *Reverter
	order    *domain.Order
}

func TestReverterSuite(t *testing.T) {
	suite.Run(t, new(ReverterTestSuite))
}

func (s *ReverterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockRepo = mocks.NewMockInventoryRepository(s.mockCtrl)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.InventoryRepoName)).
		Return(s.mockRepo, nil).AnyTimes()

	s.reverter = NewReverter(newTestLogger())
	s.order = &domain.Order{
		ID:              1,
		OrderID:         "ORD-1",
		ProductSnapshot: domain.ProductSnapshot{ProductID: 3},
		OfferOnOrders:   []domain.OfferOnOrder{{ID: 1, OfferID: 11}, {ID: 2, OfferID: 12}},
	}
}

func (s *ReverterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// batch имитирует pgx.Batch: вызывает fn для каждой строки с заданной ошибкой.
func batch(errs ...error) func(context.Context, []int64, repoargs.OfferUsageBatchQueryRow) error {
	return func(_ context.Context, ids []int64, fn repoargs.OfferUsageBatchQueryRow) error {
		for i := range ids {
			fn(i, errs[i])
		}
		return nil
	}
}

func (s *ReverterTestSuite) TestRevert() {
	dbErr := errors.New("deadlock detected")

	cases := []struct {
		name    string
		prepare func()
		wantErr error
	}{
		{
			name: "all_reverted",
			prepare: func() {
				s.mockRepo.EXPECT().IncrementStock(gomock.Any(), int64(3)).Return(nil)
				s.mockRepo.EXPECT().BatchDecrementOfferUsage(gomock.Any(), []int64{11, 12}, gomock.Any()).
					DoAndReturn(batch(nil, nil))
			},
		},
		{
			name: "missing_rows_skipped",
			prepare: func() {
				s.mockRepo.EXPECT().IncrementStock(gomock.Any(), int64(3)).Return(domain.ErrRecordNotFound)
				s.mockRepo.EXPECT().BatchDecrementOfferUsage(gomock.Any(), []int64{11, 12}, gomock.Any()).
					DoAndReturn(batch(domain.ErrRecordNotFound, nil))
			},
		},
		{
			name: "stock_error_aborts",
			prepare: func() {
				s.mockRepo.EXPECT().IncrementStock(gomock.Any(), int64(3)).Return(dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "offer_error_aborts",
			prepare: func() {
				s.mockRepo.EXPECT().IncrementStock(gomock.Any(), int64(3)).Return(nil)
				s.mockRepo.EXPECT().BatchDecrementOfferUsage(gomock.Any(), []int64{11, 12}, gomock.Any()).
					DoAndReturn(batch(nil, dbErr))
			},
			wantErr: dbErr,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			t.prepare()
			err := s.reverter.Revert(s.T().Context(), s.mockTX, s.order)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
		})
	}
}

func (s *ReverterTestSuite) TestRevert_NoProductNoOffers() {
	s.mockRepo.EXPECT().IncrementStock(gomock.Any(), gomock.Any()).Times(0)
	s.mockRepo.EXPECT().BatchDecrementOfferUsage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.Require().NoError(s.reverter.Revert(s.T().Context(), s.mockTX, &domain.Order{OrderID: "ORD-2"}))
}
