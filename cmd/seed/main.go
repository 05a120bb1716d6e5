// Seed loads a handful of demo contracts so the API has data to serve in
// development. Existing rows with the same contract IDs are replaced.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"battery-shipment-monitor/internal/config"
	"battery-shipment-monitor/internal/domain/contract"
	"battery-shipment-monitor/internal/infrastructure/database/postgres"
	"battery-shipment-monitor/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init("development"); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	repo := postgres.NewContractRepository(db)
	ctx := context.Background()

	seeds := []struct {
		contractID  string
		deviceCount int
		shipped     int
		locked      bool
	}{
		{"PBR-2024-001", 100, 50, false},
		{"PBR-2024-002", 200, 195, false},
		{"PBR-2024-003", 150, 180, true},
	}

	for _, seed := range seeds {
		_ = repo.Delete(ctx, seed.contractID)

		c, err := contract.New(seed.contractID, seed.deviceCount)
		if err != nil {
			logger.Fatal("Invalid seed contract", zap.String("contract_id", seed.contractID), zap.Error(err))
		}
		if seed.shipped > 0 {
			if err := c.AddShipped(seed.shipped); err != nil {
				logger.Fatal("Invalid seed quantity", zap.String("contract_id", seed.contractID), zap.Error(err))
			}
		}
		if seed.locked {
			c.LockForBreach()
		}

		if err := repo.Create(ctx, c); err != nil {
			logger.Fatal("Failed to seed contract", zap.String("contract_id", seed.contractID), zap.Error(err))
		}

		logger.Info("Seeded contract",
			zap.String("contract_id", c.ContractID),
			zap.Int("threshold", c.Threshold),
			zap.Int("batteries_shipped", c.BatteriesShipped),
			zap.Bool("is_locked", c.IsLocked),
		)
	}
}
