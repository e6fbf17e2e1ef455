// Package enrollment implements the user-facing course actions: enroll,
// complete a module, and read progress. Each write prefers the sponsored
// smart-account path and falls back to a plain wallet transaction when
// sponsorship is unavailable for the call or the session.
package enrollment

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/coursetoken"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/executor"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/oracle"
	"github.com/celo-academy/academy-engine/internal/session"
	"github.com/celo-academy/academy-engine/internal/sponsorship"
	"github.com/celo-academy/academy-engine/internal/store"
	"github.com/celo-academy/academy-engine/internal/syncer"
	"github.com/celo-academy/academy-engine/internal/wallet"
)

// Receipt describes the outcome of a course action. AlreadyDone means the
// on-chain precondition already held: a success with no new transaction.
type Receipt struct {
	Method      domain.TransactionMethod `json:"method,omitempty"`
	TxHash      string                   `json:"tx_hash,omitempty"`
	AlreadyDone bool                     `json:"already_done"`
}

// Progress is a user's standing in one course across both identities
type Progress struct {
	Enrolled       bool   `json:"enrolled"`
	Modules        []bool `json:"modules"`
	CompletedCount int    `json:"completed_count"`
}

//go:generate mockgen -source=service.go -destination=../mocks/enrollment.go -package=mocks -mock_names=Service=MockEnrollmentService

// Service exposes the course actions
type Service interface {
	Enroll(ctx context.Context, courseSlug, courseID string) (*Receipt, error)
	CompleteModule(ctx context.Context, courseSlug, courseID string, moduleIndex uint64) (*Receipt, error)
	Progress(ctx context.Context, courseSlug, courseID string, moduleCount int) (*Progress, error)
}

// Config pins the service to one chain and course contract
type Config struct {
	Chain           domain.Chain
	ContractAddress string
}

type service struct {
	cfg      Config
	sessions session.Manager
	auth     wallet.Authenticator
	registry sponsorship.Registry
	exec     executor.Executor
	oracle   oracle.Oracle
	syncer   syncer.Synchronizer
	mirror   store.Store
}

// NewService wires the course actions to their collaborators
func NewService(
	cfg Config,
	sessions session.Manager,
	auth wallet.Authenticator,
	registry sponsorship.Registry,
	exec executor.Executor,
	orc oracle.Oracle,
	sync syncer.Synchronizer,
	mirror store.Store,
) Service {
	return &service{
		cfg:      cfg,
		sessions: sessions,
		auth:     auth,
		registry: registry,
		exec:     exec,
		oracle:   orc,
		syncer:   sync,
		mirror:   mirror,
	}
}

func (s *service) Enroll(ctx context.Context, courseSlug, courseID string) (*Receipt, error) {
	identity, err := s.identity()
	if err != nil {
		return nil, err
	}
	tokenID := coursetoken.TokenID(courseSlug, courseID)

	if enrolled, err := s.oracle.IsEnrolled(ctx, identity, tokenID); err == nil && enrolled {
		s.syncer.SyncIfNeeded(ctx, syncAddress(identity), courseSlug)
		return &Receipt{AlreadyDone: true}, nil
	}

	receipt, err := s.submit(ctx, identity, EnrollCallData(tokenID))
	if err != nil {
		return nil, err
	}

	if receipt.TxHash != "" {
		s.syncer.SyncAfterTransaction(ctx, s.actingAddress(identity, receipt.Method), courseSlug, receipt.TxHash)
	} else {
		s.syncer.SyncIfNeeded(ctx, syncAddress(identity), courseSlug)
	}
	s.oracle.Invalidate(identity)

	return receipt, nil
}

func (s *service) CompleteModule(ctx context.Context, courseSlug, courseID string, moduleIndex uint64) (*Receipt, error) {
	identity, err := s.identity()
	if err != nil {
		return nil, err
	}
	tokenID := coursetoken.TokenID(courseSlug, courseID)

	if done, err := s.oracle.HasCompletedModule(ctx, identity, tokenID, moduleIndex); err == nil && done {
		return &Receipt{AlreadyDone: true}, nil
	}

	receipt, err := s.submit(ctx, identity, CompleteModuleCallData(tokenID, moduleIndex))
	if err != nil {
		return nil, err
	}
	s.oracle.Invalidate(identity)

	acting := s.actingAddress(identity, receipt.Method)
	var txHash *string
	if receipt.TxHash != "" {
		txHash = &receipt.TxHash
	}
	if err := s.mirror.UpsertModuleCompletion(ctx, courseSlug, acting, uint32(moduleIndex), txHash); err != nil {
		// mirror writes are best effort, the chain remains authoritative
		logger.WarnCtx(ctx, "failed to mirror module completion",
			zap.String("course", courseSlug),
			zap.Uint64("moduleIndex", moduleIndex),
			zap.Error(err))
	}

	return receipt, nil
}

func (s *service) Progress(ctx context.Context, courseSlug, courseID string, moduleCount int) (*Progress, error) {
	identity, err := s.identity()
	if err != nil {
		return nil, err
	}
	tokenID := coursetoken.TokenID(courseSlug, courseID)

	enrolled, err := s.oracle.IsEnrolled(ctx, identity, tokenID)
	if err != nil {
		return nil, err
	}

	progress := &Progress{
		Enrolled: enrolled,
		Modules:  make([]bool, moduleCount),
	}
	for i := 0; i < moduleCount; i++ {
		done, err := s.oracle.HasCompletedModule(ctx, identity, tokenID, uint64(i))
		if err != nil {
			return nil, err
		}
		progress.Modules[i] = done
		if done {
			progress.CompletedCount++
		}
	}
	return progress, nil
}

// submit routes the call: sponsored when both the allow-list and the
// session permit it, plain wallet transaction otherwise. An error whose
// payload says the precondition already holds is a success.
func (s *service) submit(ctx context.Context, identity oracle.Identity, data []byte) (*Receipt, error) {
	sponsorable := s.registry.CanSponsor(s.cfg.Chain, s.cfg.ContractAddress, data) &&
		s.sessions.CanSponsorTransaction()

	if sponsorable {
		hash, err := s.exec.Execute(ctx, s.cfg.ContractAddress, data, big.NewInt(0))
		if err == nil {
			return &Receipt{Method: domain.MethodSponsored, TxHash: hash}, nil
		}
		if domain.IsAlreadyPerformed(err) {
			return &Receipt{Method: domain.MethodSponsored, AlreadyDone: true}, nil
		}
		return nil, err
	}

	hash, err := s.sendWalletTransaction(ctx, identity.WalletAddress, data)
	if err == nil {
		return &Receipt{Method: domain.MethodWallet, TxHash: hash}, nil
	}
	if domain.IsAlreadyPerformed(err) {
		return &Receipt{Method: domain.MethodWallet, AlreadyDone: true}, nil
	}
	return nil, err
}

// sendWalletTransaction submits the call from the raw wallet, the path
// taken when sponsorship is unavailable. The user pays gas.
func (s *service) sendWalletTransaction(ctx context.Context, from string, data []byte) (string, error) {
	if !domain.IsValidAddress(from) {
		return "", domain.ErrWalletNotConnected
	}

	provider, err := s.auth.Provider(ctx, from)
	if err != nil {
		return "", err
	}

	raw, err := provider.Request(ctx, "eth_sendTransaction", map[string]string{
		"from": from,
		"to":   s.cfg.ContractAddress,
		"data": hexutil.Encode(data),
	})
	if err != nil {
		return "", err
	}

	var hash string
	if err := json.Unmarshal(raw, &hash); err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "wallet transaction submitted",
		zap.String("from", domain.NormalizeAddress(from)),
		zap.String("txHash", hash))
	return hash, nil
}

func (s *service) identity() (oracle.Identity, error) {
	snapshot := s.sessions.Session()
	if snapshot.OwnerAddress == "" {
		return oracle.Identity{}, domain.ErrWalletNotConnected
	}
	return oracle.Identity{
		WalletAddress:       snapshot.OwnerAddress,
		SmartAccountAddress: snapshot.SmartAccountAddress,
	}, nil
}

// syncAddress picks the identity the enrollment contract recorded as
// msg.sender: sponsored calls come from the smart account, so prefer it
// whenever one is bound.
func syncAddress(identity oracle.Identity) string {
	if identity.SmartAccountAddress != "" {
		return identity.SmartAccountAddress
	}
	return identity.WalletAddress
}

func (s *service) actingAddress(identity oracle.Identity, method domain.TransactionMethod) string {
	if method == domain.MethodSponsored && identity.SmartAccountAddress != "" {
		return identity.SmartAccountAddress
	}
	return identity.WalletAddress
}
