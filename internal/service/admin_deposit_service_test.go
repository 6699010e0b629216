package service

import (
	"testing"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AdminDepositServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPublisher *mocks.MockEventPublisher
	store         *memStore
	service       *AdminDepositService
}

func TestAdminDepositServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminDepositServiceTestSuite))
}

func (s *AdminDepositServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPublisher = mocks.NewMockEventPublisher(s.mockCtrl)
	s.mockPublisher.EXPECT().PublishBalanceMutation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.resetStore(domain.DepositStatusCompleted, 60000)
}

func (s *AdminDepositServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AdminDepositServiceTestSuite) resetStore(status domain.DepositStatusType, balance int64) {
	s.store = newMemStore()
	s.store.users[testUserID] = domain.User{ID: testUserID, Balance: balance}
	s.store.deposits[testDepositID] = domain.Deposit{
		ID:             testDepositID,
		DepositID:      testDepositRef,
		UserID:         testUserID,
		ProviderName:   domain.ProviderDuitku,
		AmountReceived: 50000,
		AmountPay:      51500,
		Status:         status,
	}
	s.service = NewAdminDepositService(&memUOW{s: s.store}, NewLedger(), s.mockPublisher, newTestLogger())
}

func (s *AdminDepositServiceTestSuite) args(status domain.DepositStatusType, adjust bool) ChangeDepositStatusArgs {
	return ChangeDepositStatusArgs{
		DepositID:     testDepositID,
		Status:        status,
		AdjustBalance: adjust,
		AdminID:       2,
		AdminUsername: "ops",
	}
}

func (s *AdminDepositServiceTestSuite) TestChangeStatus_Transitions() {
	cases := []struct {
		name        string
		from        domain.DepositStatusType
		to          domain.DepositStatusType
		adjust      bool
		balance     int64
		wantBalance int64
		wantType    domain.MutationType // пустая строка - журнал не пишется.
		wantNotes   string
	}{
		{
			name:        "completed_to_failed_with_adjust",
			from:        domain.DepositStatusCompleted,
			to:          domain.DepositStatusFailed,
			adjust:      true,
			balance:     60000,
			wantBalance: 10000,
			wantType:    domain.MutationDebit,
			wantNotes:   "Deposit reversed by admin #2 (ops)",
		},
		{
			name:        "reversal_can_go_negative",
			from:        domain.DepositStatusCompleted,
			to:          domain.DepositStatusCanceled,
			adjust:      true,
			balance:     20000,
			wantBalance: -30000,
			wantType:    domain.MutationDebit,
			wantNotes:   "Deposit reversed by admin #2 (ops)",
		},
		{
			name:        "pending_to_completed_with_adjust",
			from:        domain.DepositStatusPending,
			to:          domain.DepositStatusCompleted,
			adjust:      true,
			balance:     0,
			wantBalance: 50000,
			wantType:    domain.MutationCredit,
			wantNotes:   "Deposit approved by admin #2 (ops)",
		},
		{
			name:        "completed_to_failed_without_adjust",
			from:        domain.DepositStatusCompleted,
			to:          domain.DepositStatusFailed,
			balance:     60000,
			wantBalance: 60000,
		},
		{
			name:        "failed_to_expired_with_adjust",
			from:        domain.DepositStatusFailed,
			to:          domain.DepositStatusExpired,
			adjust:      true,
			balance:     60000,
			wantBalance: 60000,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.resetStore(t.from, t.balance)

			res, err := s.service.ChangeStatus(s.T().Context(), s.args(t.to, t.adjust))
			s.Require().NoError(err)
			s.Equal(t.from, res.PreviousStatus)
			s.Equal(t.to, res.Deposit.Status)
			s.Equal(t.to, s.store.deposit(testDepositID).Status)
			s.Equal(t.wantBalance, s.store.user(testUserID).Balance)
			s.Contains(res.Message(), "status changed from "+string(t.from)+" to "+string(t.to))

			mutations := s.store.allMutations()
			if t.wantType == "" {
				s.Nil(res.Mutation)
				s.Empty(mutations)
				return
			}
			s.Require().Len(mutations, 1)
			s.Equal(t.wantType, mutations[0].Type)
			s.Equal(domain.RefTypeDepositAdjustment, mutations[0].RefType)
			s.Equal(testDepositRef, mutations[0].RefID)
			s.Equal(t.wantNotes, mutations[0].Notes)
			s.Equal(t.balance, mutations[0].BalanceBefore)
			s.Contains(res.Message(), "balance adjusted")
		})
	}
}

func (s *AdminDepositServiceTestSuite) TestChangeStatus_SameStatusIsRejected() {
	for _, adjust := range []bool{false, true} {
		_, err := s.service.ChangeStatus(s.T().Context(), s.args(domain.DepositStatusCompleted, adjust))
		s.Require().ErrorIs(err, domain.ErrStatusUnchanged)
	}
	s.Empty(s.store.allMutations())
	s.Equal(int64(60000), s.store.user(testUserID).Balance)
}

func (s *AdminDepositServiceTestSuite) TestChangeStatus_Errors() {
	cases := []struct {
		name    string
		args    ChangeDepositStatusArgs
		wantErr error
	}{
		{
			name:    "invalid_status",
			args:    s.args("PAID", true),
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "pending_is_not_an_admin_target",
			args:    s.args(domain.DepositStatusPending, true),
			wantErr: domain.ErrInvalidStatus,
		},
		{
			name:    "unknown_deposit",
			args:    ChangeDepositStatusArgs{DepositID: 404, Status: domain.DepositStatusFailed},
			wantErr: domain.ErrRecordNotFound,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := s.service.ChangeStatus(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(res)
		})
	}
	s.Equal(domain.DepositStatusCompleted, s.store.deposit(testDepositID).Status)
}

func (s *AdminDepositServiceTestSuite) TestChangeStatus_ReversalThenApprovalRestoresBalance() {
	s.resetStore(domain.DepositStatusCompleted, 0)
	s.store.seedOpeningBalance(testUserID, 60000, "DEP-OPENING")

	_, err := s.service.ChangeStatus(s.T().Context(), s.args(domain.DepositStatusFailed, true))
	s.Require().NoError(err)
	_, err = s.service.ChangeStatus(s.T().Context(), s.args(domain.DepositStatusCompleted, true))
	s.Require().NoError(err)

	s.Equal(int64(60000), s.store.user(testUserID).Balance)
	mutations := s.store.allMutations()
	s.Len(mutations, 3)
	replay := domain.ReplayLedger(mutations)
	s.Empty(replay.Breaks)
	s.Equal(int64(60000), replay.Balance)
}
