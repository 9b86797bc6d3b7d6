// internal/storage/data_manager.go
package storage

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/cheraljun/BoomBoomBoom/internal/interfaces"
)

const (
	AppName = "boomboomboom"

	statsObject   = "stats"
	statsProperty = "totals"
)

var _ interfaces.Persistence = (*DataManager)(nil)

// Stats survive between launches.
type Stats struct {
	TotalKills   int `yaml:"totalKills"`
	HighestKills int `yaml:"highestKills"`
	TotalRescues int `yaml:"totalRescues"`
}

// DataManager хранит Stats через gdata. Без менеджера (nil) работает
// только в памяти.
type DataManager struct {
	mu    sync.Mutex
	gdata *gdata.Manager
	stats Stats
}

// Open открывает хранилище приложения. Если gdata недоступна, возвращается
// рабочий менеджер в памяти и ошибка для лога.
func Open(appName string) (*DataManager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewDataManager(nil), fmt.Errorf("failed to open storage: %w", err)
	}
	return NewDataManager(m), nil
}

func NewDataManager(m *gdata.Manager) *DataManager {
	dm := &DataManager{gdata: m}
	if err := dm.Load(); err != nil {
		log.Printf("[DataManager] Warning: %v (starting from zero)", err)
	}
	return dm
}

// Load читает счётчики. Отсутствие записи не ошибка.
func (dm *DataManager) Load() error {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	dm.stats = Stats{}
	if dm.gdata == nil || !dm.gdata.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}
	data, err := dm.gdata.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	var s Stats
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	dm.stats = s
	return nil
}

func (dm *DataManager) save() {
	if dm.gdata == nil {
		return
	}
	data, err := yaml.Marshal(dm.stats)
	if err != nil {
		log.Printf("[DataManager] failed to marshal stats: %v", err)
		return
	}
	if err := dm.gdata.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		log.Printf("[DataManager] failed to save stats: %v", err)
	}
}

// AddKills добавляет убийства сессии к общему счёту и обновляет рекорд.
func (dm *DataManager) AddKills(n int) {
	if n <= 0 {
		return
	}
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.stats.TotalKills += n
	dm.stats.HighestKills = max(dm.stats.HighestKills, n)
	dm.save()
}

func (dm *DataManager) AddRescue() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.stats.TotalRescues++
	dm.save()
}

// SpendKills списывает n убийств, если их хватает.
func (dm *DataManager) SpendKills(n int) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	if n < 0 || dm.stats.TotalKills < n {
		return false
	}
	dm.stats.TotalKills -= n
	dm.save()
	return true
}

func (dm *DataManager) TotalKills() int {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.stats.TotalKills
}

func (dm *DataManager) HighestKills() int {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.stats.HighestKills
}

func (dm *DataManager) TotalRescues() int {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.stats.TotalRescues
}

// Snapshot returns a copy for the menu screen.
func (dm *DataManager) Snapshot() Stats {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.stats
}

// Reset обнуляет счётчики.
func (dm *DataManager) Reset() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.stats = Stats{}
	dm.save()
}
