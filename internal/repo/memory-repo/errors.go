package memoryrepo

import accountrepo "github.com/GlebRadaev/deckelbot/internal/repo/account-repo"

// ErrAccountNotFound matches the Postgres repository so callers can test for either.
var ErrAccountNotFound = accountrepo.ErrAccountNotFound
