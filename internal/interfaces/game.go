package interfaces

// Persistence — счётчики, переживающие сессию. nil-реализации нет:
// хранилище без диска работает в памяти.
type Persistence interface {
	AddKills(n int)
	AddRescue()
	TotalKills() int
	HighestKills() int
	TotalRescues() int
	SpendKills(n int) bool
}
