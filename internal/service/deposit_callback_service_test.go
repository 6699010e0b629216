package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/gateway"
	"github.com/fsdevblog/ppob-ledger/internal/service/mocks"
	uowmocks "github.com/fsdevblog/ppob-ledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const (
	testDepositID  int64 = 1
	testDepositRef       = "DEP-20240101-0001"
	testUserID     int64 = 10
)

type DepositCallbackServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockParser    *mocks.MockCallbackParser
	mockPublisher *mocks.MockEventPublisher
	store         *memStore
	service       *DepositCallbackService
	payload       gateway.Payload
}

func TestDepositCallbackServiceSuite(t *testing.T) {
	suite.Run(t, new(DepositCallbackServiceTestSuite))
}

func (s *DepositCallbackServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParser = mocks.NewMockCallbackParser(s.mockCtrl)
	s.mockPublisher = mocks.NewMockEventPublisher(s.mockCtrl)
	s.payload = gateway.Payload{Body: []byte(`{}`)}
	s.resetStore()
}

func (s *DepositCallbackServiceTestSuite) resetStore() {
	s.store = newMemStore()
	s.store.users[testUserID] = domain.User{ID: testUserID, Balance: 1000}
	s.store.deposits[testDepositID] = domain.Deposit{
		ID:             testDepositID,
		DepositID:      testDepositRef,
		UserID:         testUserID,
		ProviderName:   domain.ProviderTripay,
		AmountReceived: 50000,
		AmountFee:      1500,
		AmountPay:      51500,
		Status:         domain.DepositStatusPending,
	}

	s.service = NewDepositCallbackService(
		&memUOW{s: s.store},
		s.mockParser,
		NewLedger(),
		s.mockPublisher,
		newTestLogger(),
	)
}

func (s *DepositCallbackServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *DepositCallbackServiceTestSuite) callback(outcome domain.GatewayOutcome) *domain.GatewayCallback {
	return &domain.GatewayCallback{
		Provider:    domain.ProviderTripay,
		Reference:   testDepositRef,
		ProviderRef: "T0001",
		Amount:      51500,
		Outcome:     outcome,
	}
}

func (s *DepositCallbackServiceTestSuite) TestHandle_SuccessCreditsBalance() {
	s.mockParser.EXPECT().Parse("tripay", s.payload).Return(s.callback(domain.OutcomeSuccess), nil)
	s.mockPublisher.EXPECT().
		PublishBalanceMutation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m domain.BalanceMutation) error {
			s.Equal(testDepositRef, m.RefID)
			s.Equal(int64(51000), m.BalanceAfter)
			return nil
		})

	res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().NoError(err)
	s.Equal(DispositionApplied, res.Disposition)
	s.Equal(string(domain.DepositStatusCompleted), res.Status)

	s.Equal(domain.DepositStatusCompleted, s.store.deposit(testDepositID).Status)
	s.Equal(int64(51000), s.store.user(testUserID).Balance)

	mutations := s.store.allMutations()
	s.Require().Len(mutations, 1)
	m := mutations[0]
	s.Equal(domain.MutationCredit, m.Type)
	s.Equal(int64(50000), m.Amount)
	s.Equal(int64(1000), m.BalanceBefore)
	s.Equal(int64(51000), m.BalanceAfter)
	s.Equal(domain.RefTypeDeposit, m.RefType)
	s.Equal("Deposit "+testDepositRef, m.Name)
}

func (s *DepositCallbackServiceTestSuite) TestHandle_LedgerErrorRollsBackStatus() {
	delete(s.store.users, testUserID)
	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(domain.OutcomeSuccess), nil)
	s.mockPublisher.EXPECT().PublishBalanceMutation(gomock.Any(), gomock.Any()).Times(0)

	res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Require().NotErrorIs(err, domain.ErrAlreadyProcessed)
	s.Nil(res)

	s.Equal(domain.DepositStatusPending, s.store.deposit(testDepositID).Status)
	s.Empty(s.store.allMutations())
	s.Equal(1, s.store.transactions())
}

func (s *DepositCallbackServiceTestSuite) TestHandle_ReplayIsAcknowledged() {
	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(domain.OutcomeSuccess), nil).Times(2)
	s.mockPublisher.EXPECT().PublishBalanceMutation(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().NoError(err)

	res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().NoError(err)
	s.Equal(DispositionAlreadyProcessed, res.Disposition)
	s.Empty(res.Status)

	s.Len(s.store.allMutations(), 1)
	s.Equal(int64(51000), s.store.user(testUserID).Balance)
}

func (s *DepositCallbackServiceTestSuite) TestHandle_ConcurrentDuplicates() {
	const n = 10
	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(domain.OutcomeSuccess), nil).Times(n)
	s.mockPublisher.EXPECT().PublishBalanceMutation(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.service.Handle(context.Background(), "tripay", s.payload)
			if err != nil {
				s.T().Errorf("handle: %v", err)
				return
			}
			if res.Disposition == DispositionApplied {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, applied)
	s.Len(s.store.allMutations(), 1)
	s.Equal(int64(51000), s.store.user(testUserID).Balance)
}

func (s *DepositCallbackServiceTestSuite) TestHandle_NonSuccessOutcomes() {
	cases := []struct {
		name    string
		outcome domain.GatewayOutcome
		want    domain.DepositStatusType
	}{
		{name: "failed", outcome: domain.OutcomeFailed, want: domain.DepositStatusFailed},
		{name: "expired", outcome: domain.OutcomeExpired, want: domain.DepositStatusExpired},
		{name: "canceled", outcome: domain.OutcomeCanceled, want: domain.DepositStatusCanceled},
		{name: "unknown", outcome: domain.OutcomeUnknown, want: domain.DepositStatusFailed},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.resetStore()
			s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(t.outcome), nil)

			res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
			s.Require().NoError(err)
			s.Equal(DispositionApplied, res.Disposition)
			s.Equal(t.want, s.store.deposit(testDepositID).Status)
			s.Empty(s.store.allMutations())
			s.Equal(int64(1000), s.store.user(testUserID).Balance)
		})
	}
}

func (s *DepositCallbackServiceTestSuite) TestHandle_PendingOutcomeChangesNothing() {
	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(domain.OutcomePending), nil)

	res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().NoError(err)
	s.Equal(DispositionPending, res.Disposition)
	s.Equal(0, s.store.transactions())
	s.Equal(domain.DepositStatusPending, s.store.deposit(testDepositID).Status)
}

func (s *DepositCallbackServiceTestSuite) TestHandle_Rejected() {
	cases := []struct {
		name    string
		cb      func() *domain.GatewayCallback
		wantErr error
	}{
		{
			name: "provider_mismatch",
			cb: func() *domain.GatewayCallback {
				cb := s.callback(domain.OutcomeSuccess)
				cb.Provider = domain.ProviderDuitku
				return cb
			},
			wantErr: domain.ErrProviderMismatch,
		},
		{
			name: "amount_mismatch",
			cb: func() *domain.GatewayCallback {
				cb := s.callback(domain.OutcomeSuccess)
				cb.Amount = 1
				return cb
			},
			wantErr: domain.ErrAmountMismatch,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(t.cb(), nil)

			res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(res)
			s.Equal(domain.DepositStatusPending, s.store.deposit(testDepositID).Status)
			s.Empty(s.store.allMutations())
		})
	}
}

func (s *DepositCallbackServiceTestSuite) TestHandle_EmptyDepositProviderIsMismatch() {
	d := s.store.deposits[testDepositID]
	d.ProviderName = ""
	s.store.deposits[testDepositID] = d

	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(domain.OutcomeSuccess), nil)

	_, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	var mismatch *domain.ProviderMismatchError
	s.Require().ErrorAs(err, &mismatch)
	s.Equal(domain.ProviderTripay, mismatch.Actual)
}

func (s *DepositCallbackServiceTestSuite) TestHandle_UnknownDepositIsAcknowledged() {
	cb := s.callback(domain.OutcomeSuccess)
	cb.Reference = "DEP-UNKNOWN"
	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(cb, nil)

	res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().NoError(err)
	s.Equal(DispositionAlreadyProcessed, res.Disposition)
}

func (s *DepositCallbackServiceTestSuite) TestHandle_ZeroAmountReceivedSkipsLedger() {
	d := s.store.deposits[testDepositID]
	d.AmountReceived = 0
	s.store.deposits[testDepositID] = d

	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(domain.OutcomeSuccess), nil)

	res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().NoError(err)
	s.Equal(DispositionApplied, res.Disposition)
	s.Equal(domain.DepositStatusCompleted, s.store.deposit(testDepositID).Status)
	s.Empty(s.store.allMutations())
}

func (s *DepositCallbackServiceTestSuite) TestHandle_PublishFailureDoesNotFail() {
	s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(s.callback(domain.OutcomeSuccess), nil)
	s.mockPublisher.EXPECT().PublishBalanceMutation(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	res, err := s.service.Handle(s.T().Context(), "tripay", s.payload)
	s.Require().NoError(err)
	s.Equal(DispositionApplied, res.Disposition)
	s.Equal(int64(51000), s.store.user(testUserID).Balance)
}

func (s *DepositCallbackServiceTestSuite) TestHandle_ParseErrorNeverOpensTransaction() {
	mockUOW := uowmocks.NewMockUOW(s.mockCtrl)
	mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)
	service := NewDepositCallbackService(mockUOW, s.mockParser, NewLedger(), s.mockPublisher, newTestLogger())

	cases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "invalid_signature", err: domain.ErrInvalidSignature, wantErr: domain.ErrInvalidSignature},
		{name: "invalid_payload", err: domain.ErrInvalidPayload, wantErr: domain.ErrInvalidPayload},
		{name: "unknown_provider", err: domain.ErrUnknownProvider, wantErr: domain.ErrUnknownProvider},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockParser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(nil, t.err)

			res, err := service.Handle(s.T().Context(), "tripay", s.payload)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(res)
		})
	}
}
