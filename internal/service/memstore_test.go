package service

import (
	"context"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
	"github.com/sirupsen/logrus"
)

// memStore хранилище в памяти для проверки сервисов целиком. Транзакции uow выполняются строго по одной
// (аналог блокировки строк), при ошибке состояние откатывается к снимку.
type memStore struct {
	mu sync.Mutex

	users     map[int64]domain.User
	admins    map[string]domain.Admin
	deposits  map[int64]domain.Deposit
	orders    map[int64]domain.Order
	stock     map[int64]int64
	usage     map[int64]int64
	mutations []domain.BalanceMutation
	txCount   int

	// offerErrs ошибки, которые вернет батч уменьшения usage_count для оффера.
	offerErrs map[int64]error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]domain.User),
		admins:   make(map[string]domain.Admin),
		deposits: make(map[int64]domain.Deposit),
		orders:   make(map[int64]domain.Order),
		stock:    make(map[int64]int64),
		usage:    make(map[int64]int64),
	}
}

type memSnapshot struct {
	users     map[int64]domain.User
	deposits  map[int64]domain.Deposit
	orders    map[int64]domain.Order
	stock     map[int64]int64
	usage     map[int64]int64
	mutations []domain.BalanceMutation
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		users:     maps.Clone(s.users),
		deposits:  maps.Clone(s.deposits),
		orders:    maps.Clone(s.orders),
		stock:     maps.Clone(s.stock),
		usage:     maps.Clone(s.usage),
		mutations: slices.Clone(s.mutations),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.deposits = snap.deposits
	s.orders = snap.orders
	s.stock = snap.stock
	s.usage = snap.usage
	s.mutations = snap.mutations
}

// seedOpeningBalance заводит баланс пользователя вместе с начислением в журнале, чтобы цепочка сходилась.
func (s *memStore) seedOpeningBalance(userID, amount int64, refID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[userID]
	s.mutations = append(s.mutations, domain.BalanceMutation{
		ID:            int64(len(s.mutations) + 1),
		CreatedAt:     time.Now(),
		UserID:        userID,
		Amount:        amount,
		Type:          domain.MutationCredit,
		BalanceBefore: u.Balance,
		BalanceAfter:  u.Balance + amount,
		RefID:         refID,
		RefType:       domain.RefTypeDeposit,
	})
	u.ID = userID
	u.Balance += amount
	s.users[userID] = u
}

// Чтение состояния из тестов.

func (s *memStore) user(id int64) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

func (s *memStore) deposit(id int64) domain.Deposit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deposits[id]
}

func (s *memStore) order(id int64) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id]
}

func (s *memStore) allMutations() []domain.BalanceMutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.mutations)
}

func (s *memStore) transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

// memUOW реализация uow.UOW поверх memStore.
type memUOW struct {
	s *memStore
}

func (u *memUOW) Register(uow.RepositoryName, uow.RepositoryFactory) error {
	return nil
}

func (u *memUOW) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	u.s.txCount++
	snap := u.s.snapshot()
	if err := fn(ctx, &memTX{s: u.s}); err != nil {
		u.s.restore(snap)
		return err
	}
	return nil
}

func (u *memUOW) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return memRepository(u.s, name, false)
}

type memTX struct {
	s *memStore
}

func (t *memTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	return memRepository(t.s, name, true)
}

func memRepository(s *memStore, name uow.RepositoryName, inTx bool) (uow.Repository, error) {
	base := memRepo{s: s, inTx: inTx}
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &memUserRepo{base}, nil
	case repoargs.AdminRepoName:
		return &memAdminRepo{base}, nil
	case repoargs.DepositRepoName:
		return &memDepositRepo{base}, nil
	case repoargs.OrderRepoName:
		return &memOrderRepo{base}, nil
	case repoargs.BalanceMutationRepoName:
		return &memMutationRepo{base}, nil
	case repoargs.InventoryRepoName:
		return &memInventoryRepo{base}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

// memRepo внутри транзакции работает под блокировкой Do, вне транзакции берет ее сам.
type memRepo struct {
	s    *memStore
	inTx bool
}

func (r memRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

type memUserRepo struct{ memRepo }

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	defer r.lock()()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	return r.FindByID(ctx, id)
}

func (r *memUserRepo) UpdateBalance(_ context.Context, id int64, balance int64) error {
	defer r.lock()()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrRecordNotFound
	}
	u.Balance = balance
	r.s.users[id] = u
	return nil
}

type memAdminRepo struct{ memRepo }

func (r *memAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	defer r.lock()()
	a, ok := r.s.admins[username]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &a, nil
}

func (r *memAdminRepo) Create(_ context.Context, username, encryptedPassword string) (*domain.Admin, error) {
	defer r.lock()()
	if _, ok := r.s.admins[username]; ok {
		return nil, domain.ErrDuplicateKey
	}
	a := domain.Admin{
		ID:                int64(len(r.s.admins) + 1),
		Username:          username,
		EncryptedPassword: encryptedPassword,
	}
	r.s.admins[username] = a
	return &a, nil
}

type memDepositRepo struct{ memRepo }

func (r *memDepositRepo) FindForUpdate(
	_ context.Context,
	depositID string,
	status domain.DepositStatusType,
) (*domain.Deposit, error) {
	defer r.lock()()
	for _, d := range r.s.deposits {
		if d.DepositID == depositID && d.Status == status {
			return &d, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *memDepositRepo) FindByIDForUpdate(_ context.Context, id int64) (*domain.Deposit, error) {
	defer r.lock()()
	d, ok := r.s.deposits[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &d, nil
}

func (r *memDepositRepo) UpdateStatus(_ context.Context, args repoargs.UpdateDepositStatus) (*domain.Deposit, error) {
	defer r.lock()()
	d, ok := r.s.deposits[args.ID]
	if !ok || d.Status != args.From {
		return nil, domain.ErrRecordNotFound
	}
	d.Status = args.To
	d.UpdatedAt = time.Now()
	r.s.deposits[args.ID] = d
	return &d, nil
}

type memOrderRepo struct{ memRepo }

func (r *memOrderRepo) FindForUpdate(
	_ context.Context,
	orderID string,
	paymentStatus domain.PaymentStatusType,
) (*domain.Order, error) {
	defer r.lock()()
	for _, o := range r.s.orders {
		if o.OrderID == orderID && o.PaymentStatus == paymentStatus {
			return &o, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *memOrderRepo) UpdatePayment(_ context.Context, args repoargs.UpdateOrderPayment) (*domain.Order, error) {
	defer r.lock()()
	o, ok := r.s.orders[args.ID]
	if !ok || o.PaymentStatus != args.From {
		return nil, domain.ErrRecordNotFound
	}
	o.PaymentStatus = args.To
	if args.OrderStatus != nil {
		o.OrderStatus = *args.OrderStatus
	}
	o.UpdatedAt = time.Now()
	r.s.orders[args.ID] = o
	return &o, nil
}

func (r *memOrderRepo) GetPendingFulfillment(
	_ context.Context,
	query repoargs.PendingFulfillmentQuery,
) ([]domain.Order, error) {
	defer r.lock()()
	var orders []domain.Order
	for _, o := range r.s.orders {
		if o.PaymentStatus == domain.PaymentStatusSuccess && o.OrderStatus == domain.OrderStatusPending &&
			o.FulfillmentEnqueuedAt == nil && o.UpdatedAt.Before(query.PaidUntil) {
			orders = append(orders, o)
		}
	}
	if uint(len(orders)) > query.Limit {
		orders = orders[:query.Limit]
	}
	return orders, nil
}

func (r *memOrderRepo) MarkFulfillmentEnqueued(_ context.Context, ids []int64) error {
	defer r.lock()()
	now := time.Now()
	for _, id := range ids {
		o := r.s.orders[id]
		o.FulfillmentEnqueuedAt = &now
		r.s.orders[id] = o
	}
	return nil
}

type memMutationRepo struct{ memRepo }

func (r *memMutationRepo) Create(
	_ context.Context,
	args repoargs.BalanceMutationCreate,
) (*domain.BalanceMutation, error) {
	defer r.lock()()
	if args.RefType == domain.RefTypeDeposit {
		for _, m := range r.s.mutations {
			if m.RefID == args.RefID && m.RefType == args.RefType && m.Type == args.Type {
				return nil, domain.ErrDuplicateKey
			}
		}
	}
	m := domain.BalanceMutation{
		ID:            int64(len(r.s.mutations) + 1),
		CreatedAt:     time.Now(),
		UserID:        args.UserID,
		Amount:        args.Amount,
		Type:          args.Type,
		BalanceBefore: args.BalanceBefore,
		BalanceAfter:  args.BalanceAfter,
		RefID:         args.RefID,
		RefType:       args.RefType,
		Name:          args.Name,
		Notes:         args.Notes,
	}
	r.s.mutations = append(r.s.mutations, m)
	return &m, nil
}

func (r *memMutationRepo) ListByUser(_ context.Context, userID int64, limit uint) ([]domain.BalanceMutation, error) {
	defer r.lock()()
	var res []domain.BalanceMutation
	for i := len(r.s.mutations) - 1; i >= 0 && uint(len(res)) < limit; i-- {
		if r.s.mutations[i].UserID == userID {
			res = append(res, r.s.mutations[i])
		}
	}
	return res, nil
}

func (r *memMutationRepo) ListForReplay(_ context.Context, userID int64) ([]domain.BalanceMutation, error) {
	defer r.lock()()
	var res []domain.BalanceMutation
	for _, m := range r.s.mutations {
		if m.UserID == userID {
			res = append(res, m)
		}
	}
	return res, nil
}

type memInventoryRepo struct{ memRepo }

func (r *memInventoryRepo) IncrementStock(_ context.Context, productID int64) error {
	defer r.lock()()
	if _, ok := r.s.stock[productID]; !ok {
		return domain.ErrRecordNotFound
	}
	r.s.stock[productID]++
	return nil
}

func (r *memInventoryRepo) BatchDecrementOfferUsage(
	_ context.Context,
	offerIDs []int64,
	fn repoargs.OfferUsageBatchQueryRow,
) error {
	defer r.lock()()
	for i, id := range offerIDs {
		if err, ok := r.s.offerErrs[id]; ok {
			fn(i, err)
			continue
		}
		if _, ok := r.s.usage[id]; !ok {
			fn(i, domain.ErrRecordNotFound)
			continue
		}
		r.s.usage[id]--
		fn(i, nil)
	}
	return nil
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
