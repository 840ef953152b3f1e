// Package mocks provide pregenerated gomock files for working with tests.
// The primary goal for this pkg is to test the rainy paths of the adapters,
// which are complicated to set up with the real awaitable and store implementations.
package mocks

//go:generate mockgen -package mocks -destination mock_iterkit.go go.llib.dev/iterbridge/pkg/iterkit Handle,Awaitable,AsyncIterator
//go:generate mockgen -package mocks -destination mock_snapshot.go go.llib.dev/iterbridge/pkg/snapshot Store
