package repo

import (
	"github.com/GlebRadaev/deckelbot/internal/pg"
	accountrepo "github.com/GlebRadaev/deckelbot/internal/repo/account-repo"
	memoryrepo "github.com/GlebRadaev/deckelbot/internal/repo/memory-repo"
	settlementrepo "github.com/GlebRadaev/deckelbot/internal/repo/settlement-repo"
	"github.com/GlebRadaev/deckelbot/internal/service/settlementservice"
	"github.com/GlebRadaev/deckelbot/internal/service/tabservice"
)

type Repositories struct {
	AccountRepo    tabservice.AccountRepo
	SettlementRepo settlementservice.SettlementRepo
	TxManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:    accountrepo.New(conn),
		SettlementRepo: settlementrepo.New(conn),
		TxManager:      txManager,
	}
}

// NewMemory keeps everything in process memory. Data is lost on restart.
func NewMemory() *Repositories {
	store := memoryrepo.New()
	return &Repositories{
		AccountRepo:    store.Accounts(),
		SettlementRepo: store.Settlements(),
		TxManager:      store,
	}
}
