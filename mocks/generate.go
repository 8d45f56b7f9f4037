package mocks

//go:generate mockgen -destination=./mock_execution.go -package=mocks github.com/rxtech-lab/argo-strategy/internal/execution Provider
//go:generate mockgen -destination=./mock_marketdata.go -package=mocks github.com/rxtech-lab/argo-strategy/internal/marketdata Subscriber
//go:generate mockgen -destination=./mock_identity.go -package=mocks github.com/rxtech-lab/argo-strategy/internal/identity IDGenerator
