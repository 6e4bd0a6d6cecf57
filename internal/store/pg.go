package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance.
// The *gorm.DB must be opened with TranslateError enabled so unique
// violations surface as gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Admin{},
		&schema.Manager{},
		&schema.Worker{},
		&schema.Credential{},
		&schema.Process{},
		&schema.Party{},
		&schema.LookupValue{},
		&schema.Purchase{},
		&schema.Packet{},
		&schema.CustodyChain{},
		&schema.TransferRecord{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. It accesses the underlying *sql.DB and sets the pool
// configuration. Zero values fall back to the defaults applied by
// NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetAdminByID retrieves an admin by its ID
func (s *pgStore) GetAdminByID(ctx context.Context, id uuid.UUID) (*schema.Admin, error) {
	var admin schema.Admin
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// GetManagerByID retrieves a manager by its ID
func (s *pgStore) GetManagerByID(ctx context.Context, id uuid.UUID) (*schema.Manager, error) {
	var manager schema.Manager
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get manager: %w", err)
	}
	return &manager, nil
}

// GetWorkerByID retrieves a worker by its ID
func (s *pgStore) GetWorkerByID(ctx context.Context, id uuid.UUID) (*schema.Worker, error) {
	var worker schema.Worker
	err := s.db.WithContext(ctx).Preload("Processes").Where("id = ?", id).First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return &worker, nil
}

// GetWorkerIDsByManagerID retrieves the IDs of a manager's direct workers
func (s *pgStore) GetWorkerIDsByManagerID(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&schema.Worker{}).
		Where("manager_id = ?", managerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get worker IDs: %w", err)
	}
	return ids, nil
}

// CreateManager creates a manager and its credential in one transaction
func (s *pgStore) CreateManager(ctx context.Context, input CreateManagerInput) (*schema.Manager, error) {
	manager := input.Manager
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&manager).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateEmail
			}
			return fmt.Errorf("failed to create manager: %w", err)
		}

		if input.PasswordHash != "" && manager.Email != nil {
			credential := schema.Credential{
				ActorID:      manager.ID,
				ActorKind:    domain.ActorKindManager,
				Email:        *manager.Email,
				PasswordHash: input.PasswordHash,
			}
			if err := tx.Create(&credential).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ErrDuplicateEmail
				}
				return fmt.Errorf("failed to create manager credential: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &manager, nil
}

// UpdateManager applies the given column updates to a manager
func (s *pgStore) UpdateManager(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Manager{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update manager: %w", err)
	}
	return nil
}

// DeleteManager deletes a manager and its credential in one transaction.
// Workers keep their manager_id; listings render the missing manager as
// unknown.
func (s *pgStore) DeleteManager(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("actor_id = ? AND actor_kind = ?", id, domain.ActorKindManager).
			Delete(&schema.Credential{}).Error; err != nil {
			return fmt.Errorf("failed to delete manager credential: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&schema.Manager{}).Error; err != nil {
			return fmt.Errorf("failed to delete manager: %w", err)
		}
		return nil
	})
}

// ListManagers retrieves all managers
func (s *pgStore) ListManagers(ctx context.Context, offset, limit int) ([]*schema.Manager, error) {
	var managers []*schema.Manager
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&managers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	return managers, nil
}

// CreateWorker creates a worker, its process assignments and its credential
// in one transaction
func (s *pgStore) CreateWorker(ctx context.Context, input CreateWorkerInput) (*schema.Worker, error) {
	worker := input.Worker
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Processes", "Manager").Create(&worker).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateEmail
			}
			return fmt.Errorf("failed to create worker: %w", err)
		}

		if len(input.ProcessIDs) > 0 {
			processes := make([]schema.Process, 0, len(input.ProcessIDs))
			for _, pid := range input.ProcessIDs {
				processes = append(processes, schema.Process{ID: pid})
			}
			if err := tx.Model(&worker).Association("Processes").Append(processes); err != nil {
				return fmt.Errorf("failed to assign worker processes: %w", err)
			}
		}

		if input.PasswordHash != "" && worker.Email != nil {
			credential := schema.Credential{
				ActorID:      worker.ID,
				ActorKind:    domain.ActorKindWorker,
				Email:        *worker.Email,
				PasswordHash: input.PasswordHash,
			}
			if err := tx.Create(&credential).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ErrDuplicateEmail
				}
				return fmt.Errorf("failed to create worker credential: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// UpdateWorker applies the given column updates to a worker
func (s *pgStore) UpdateWorker(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Worker{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}
	return nil
}

// DeleteWorker deletes a worker, its process assignments and its credential
// in one transaction
func (s *pgStore) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		worker := schema.Worker{ID: id}
		if err := tx.Model(&worker).Association("Processes").Clear(); err != nil {
			return fmt.Errorf("failed to clear worker processes: %w", err)
		}
		if err := tx.
			Where("actor_id = ? AND actor_kind = ?", id, domain.ActorKindWorker).
			Delete(&schema.Credential{}).Error; err != nil {
			return fmt.Errorf("failed to delete worker credential: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&schema.Worker{}).Error; err != nil {
			return fmt.Errorf("failed to delete worker: %w", err)
		}
		return nil
	})
}

// ListWorkers retrieves workers, optionally restricted to the given managers
func (s *pgStore) ListWorkers(ctx context.Context, managerIDs []uuid.UUID, offset, limit int) ([]*schema.Worker, error) {
	query := s.db.WithContext(ctx).Preload("Processes")
	if managerIDs != nil {
		query = query.Where("manager_id IN ?", managerIDs)
	}

	var workers []*schema.Worker
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&workers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// CreateAdmin creates an admin and its credential in one transaction
func (s *pgStore) CreateAdmin(ctx context.Context, admin schema.Admin, passwordHash string) (*schema.Admin, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateEmail
			}
			return fmt.Errorf("failed to create admin: %w", err)
		}

		credential := schema.Credential{
			ActorID:      admin.ID,
			ActorKind:    domain.ActorKindAdmin,
			Email:        admin.Email,
			PasswordHash: passwordHash,
		}
		if err := tx.Create(&credential).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateEmail
			}
			return fmt.Errorf("failed to create admin credential: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetCredentialByEmail retrieves a credential by its login email
func (s *pgStore) GetCredentialByEmail(ctx context.Context, email string) (*schema.Credential, error) {
	var credential schema.Credential
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return &credential, nil
}

// RecordTransfer appends one handover to the packet's custody chain, creating
// the chain if it does not exist, and moves the packet to the receiving
// actor, all in one transaction.
func (s *pgStore) RecordTransfer(ctx context.Context, input RecordTransferInput) (*schema.TransferRecord, error) {
	var record schema.TransferRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Create or get the chain for this packet number
		chain := schema.CustodyChain{PacketNo: input.PacketNo}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "packet_no"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": gorm.Expr("now()")}),
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&chain).Error; err != nil {
			return fmt.Errorf("failed to upsert custody chain: %w", err)
		}

		// 2. Lock the chain row so concurrent appends serialize on seq
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", chain.ID).
			First(&chain).Error; err != nil {
			return fmt.Errorf("failed to lock custody chain: %w", err)
		}

		var maxSeq int
		if err := tx.Model(&schema.TransferRecord{}).
			Where("chain_id = ?", chain.ID).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error; err != nil {
			return fmt.Errorf("failed to get max seq: %w", err)
		}

		// 3. Append the record
		record = schema.TransferRecord{
			TransactionNo: input.TransactionNo,
			ChainID:       chain.ID,
			Seq:           maxSeq + 1,
			PacketNo:      input.PacketNo,
			ProcessID:     input.ProcessID,
			FromID:        input.FromID,
			FromKind:      input.FromKind,
			ToID:          input.ToID,
			ToKind:        input.ToKind,
			PrevWeight:    input.PrevWeight,
			NewWeight:     input.NewWeight,
			Grading:       input.Grading,
		}
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateTransactionNo
			}
			return fmt.Errorf("failed to create transfer record: %w", err)
		}

		// 4. Move the packet to the receiving actor. The packet row may have
		// been deleted after earlier transfers; the chain outlives it.
		updates := map[string]interface{}{
			"current_owner_id": input.ToID,
			"owner_kind":       input.ToKind,
			"status":           domain.PacketStatusActive,
			"updated_at":       gorm.Expr("now()"),
		}
		if input.NewWeight != nil {
			updates["stock_weight"] = *input.NewWeight
		}
		if err := tx.Model(&schema.Packet{}).
			Where("packet_no = ?", input.PacketNo).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update packet owner: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetCustodyChainByPacketNo retrieves a chain with its records in sequence order
func (s *pgStore) GetCustodyChainByPacketNo(ctx context.Context, packetNo string) (*schema.CustodyChain, error) {
	var chain schema.CustodyChain
	err := s.db.WithContext(ctx).
		Preload("Transfers", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Preload("Transfers.Process").
		Where("packet_no = ?", packetNo).
		First(&chain).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get custody chain: %w", err)
	}
	return &chain, nil
}

// GetTransferByTransactionNo retrieves a single transfer record
func (s *pgStore) GetTransferByTransactionNo(ctx context.Context, transactionNo string) (*schema.TransferRecord, error) {
	var record schema.TransferRecord
	err := s.db.WithContext(ctx).
		Preload("Process").
		Where("transaction_no = ?", transactionNo).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer record: %w", err)
	}
	return &record, nil
}

// ListTransfers retrieves transfer records matching the filter, newest first
func (s *pgStore) ListTransfers(ctx context.Context, filter ListTransfersFilter) ([]*schema.TransferRecord, error) {
	query := s.db.WithContext(ctx).Preload("Process")
	if filter.ActorIDs != nil {
		query = query.Where("from_id IN ? OR to_id IN ?", filter.ActorIDs, filter.ActorIDs)
	}
	if filter.PacketNo != "" {
		query = query.Where("packet_no = ?", filter.PacketNo)
	}

	var records []*schema.TransferRecord
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer records: %w", err)
	}
	return records, nil
}

// CancelTransfer marks a transfer record as cancelled by the given actor.
// Records are append-only; cancellation never removes the row.
func (s *pgStore) CancelTransfer(ctx context.Context, transactionNo string, byID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Model(&schema.TransferRecord{}).
		Where("transaction_no = ? AND cancel_by_id IS NULL", transactionNo).
		Update("cancel_by_id", byID)
	if result.Error != nil {
		return fmt.Errorf("failed to cancel transfer record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrHistoryNotFound
	}
	return nil
}

// CreatePacket creates a packet
func (s *pgStore) CreatePacket(ctx context.Context, packet *schema.Packet) error {
	err := s.db.WithContext(ctx).
		Omit("Shape", "Color", "Purity", "Cut", "Polish", "Symmetry", "Fluorescence", "Table").
		Create(packet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicatePacketNo
		}
		return fmt.Errorf("failed to create packet: %w", err)
	}
	return nil
}

// GetPacketByID retrieves a packet by its ID
func (s *pgStore) GetPacketByID(ctx context.Context, id uuid.UUID) (*schema.Packet, error) {
	var packet schema.Packet
	err := s.db.WithContext(ctx).
		Preload(clause.Associations).
		Where("id = ?", id).
		First(&packet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get packet: %w", err)
	}
	return &packet, nil
}

// GetPacketByPacketNo retrieves a packet by its packet number
func (s *pgStore) GetPacketByPacketNo(ctx context.Context, packetNo string) (*schema.Packet, error) {
	var packet schema.Packet
	err := s.db.WithContext(ctx).
		Preload(clause.Associations).
		Where("packet_no = ?", packetNo).
		First(&packet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get packet: %w", err)
	}
	return &packet, nil
}

// UpdatePacket applies the given column updates to a packet
func (s *pgStore) UpdatePacket(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Packet{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicatePacketNo
		}
		return fmt.Errorf("failed to update packet: %w", err)
	}
	return nil
}

// DeletePacket deletes a packet. Its custody chain survives so history stays
// queryable by packet number.
func (s *pgStore) DeletePacket(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Packet{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete packet: %w", err)
	}
	return nil
}

// ListPackets retrieves packets matching the filter, newest first
func (s *pgStore) ListPackets(ctx context.Context, filter ListPacketsFilter) ([]*schema.Packet, error) {
	query := s.db.WithContext(ctx).Preload(clause.Associations)
	if filter.OwnerIDs != nil {
		query = query.Where("current_owner_id IN ?", filter.OwnerIDs)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PurchaseID != nil {
		query = query.Where("purchase_id = ?", *filter.PurchaseID)
	}

	var packets []*schema.Packet
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&packets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list packets: %w", err)
	}
	return packets, nil
}

// CreatePurchase creates a purchase
func (s *pgStore) CreatePurchase(ctx context.Context, purchase *schema.Purchase) error {
	err := s.db.WithContext(ctx).
		Omit("Party", "Stone", "Packets").
		Create(purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateJanganNo
		}
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetPurchaseByID retrieves a purchase with its party, stone and packets
func (s *pgStore) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*schema.Purchase, error) {
	var purchase schema.Purchase
	err := s.db.WithContext(ctx).
		Preload("Party").
		Preload("Stone").
		Preload("Packets").
		Where("id = ?", id).
		First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &purchase, nil
}

// UpdatePurchase applies the given column updates to a purchase
func (s *pgStore) UpdatePurchase(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Purchase{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateJanganNo
		}
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	return nil
}

// DeletePurchase deletes a purchase. Packets split from it keep their
// purchase_id; listings render the missing purchase as unknown.
func (s *pgStore) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Purchase{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	return nil
}

// ListPurchases retrieves purchases, newest first
func (s *pgStore) ListPurchases(ctx context.Context, offset, limit int) ([]*schema.Purchase, error) {
	var purchases []*schema.Purchase
	err := s.db.WithContext(ctx).
		Preload("Party").
		Preload("Stone").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// AddPacketsToPurchase attaches packets to a purchase, enforcing the
// purchase's declared piece count, in one transaction
func (s *pgStore) AddPacketsToPurchase(ctx context.Context, purchaseID uuid.UUID, packets []*schema.Packet) error {
	if len(packets) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the purchase row so concurrent attachments serialize on the
		// piece count check
		var purchase schema.Purchase
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", purchaseID).
			First(&purchase).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPurchaseNotFound
			}
			return fmt.Errorf("failed to lock purchase: %w", err)
		}

		var attached int64
		if err := tx.Model(&schema.Packet{}).
			Where("purchase_id = ?", purchaseID).
			Count(&attached).Error; err != nil {
			return fmt.Errorf("failed to count attached packets: %w", err)
		}

		if int(attached)+len(packets) > purchase.Pieces {
			return domain.ErrPurchaseFull
		}

		for _, packet := range packets {
			packet.PurchaseID = &purchaseID
			if err := tx.
				Omit("Shape", "Color", "Purity", "Cut", "Polish", "Symmetry", "Fluorescence", "Table").
				Create(packet).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ErrDuplicatePacketNo
				}
				return fmt.Errorf("failed to create packet %s: %w", packet.PacketNo, err)
			}
		}

		return nil
	})
}

// CreateLookupValue creates a lookup value
func (s *pgStore) CreateLookupValue(ctx context.Context, value *schema.LookupValue) error {
	err := s.db.WithContext(ctx).Create(value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateLookupValue
		}
		return fmt.Errorf("failed to create lookup value: %w", err)
	}
	return nil
}

// ListLookupValues retrieves all lookup values of a kind
func (s *pgStore) ListLookupValues(ctx context.Context, kind domain.LookupKind) ([]*schema.LookupValue, error) {
	var values []*schema.LookupValue
	err := s.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("name ASC").
		Find(&values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup values: %w", err)
	}
	return values, nil
}

// GetLookupValuesByIDs retrieves lookup values by their IDs
func (s *pgStore) GetLookupValuesByIDs(ctx context.Context, ids []uuid.UUID) ([]*schema.LookupValue, error) {
	if len(ids) == 0 {
		return []*schema.LookupValue{}, nil
	}

	var values []*schema.LookupValue
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get lookup values by IDs: %w", err)
	}
	return values, nil
}

// DeleteLookupValue deletes a lookup value
func (s *pgStore) DeleteLookupValue(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.LookupValue{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete lookup value: %w", err)
	}
	return nil
}

// CreateProcess creates a process
func (s *pgStore) CreateProcess(ctx context.Context, process *schema.Process) error {
	err := s.db.WithContext(ctx).Create(process).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateLookupValue
		}
		return fmt.Errorf("failed to create process: %w", err)
	}
	return nil
}

// ListProcesses retrieves all processes
func (s *pgStore) ListProcesses(ctx context.Context) ([]*schema.Process, error) {
	var processes []*schema.Process
	err := s.db.WithContext(ctx).Order("name ASC").Find(&processes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return processes, nil
}

// DeleteProcess deletes a process
func (s *pgStore) DeleteProcess(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Process{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete process: %w", err)
	}
	return nil
}

// CreateParty creates a party
func (s *pgStore) CreateParty(ctx context.Context, party *schema.Party) error {
	err := s.db.WithContext(ctx).Create(party).Error
	if err != nil {
		return fmt.Errorf("failed to create party: %w", err)
	}
	return nil
}

// ListParties retrieves all parties
func (s *pgStore) ListParties(ctx context.Context) ([]*schema.Party, error) {
	var parties []*schema.Party
	err := s.db.WithContext(ctx).Order("name ASC").Find(&parties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}
