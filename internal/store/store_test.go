package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/gemveer/inventory/internal/domain"
	"github.com/gemveer/inventory/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// buildTestManager creates a manager input with an optional login
func buildTestManager(email string) CreateManagerInput {
	input := CreateManagerInput{
		Manager: schema.Manager{
			FirstName: "Ramesh",
			LastName:  "Patel",
			MobileNo:  "9800000001",
			Gender:    "Male",
			Address: schema.Address{
				City:  "Surat",
				State: "Gujarat",
			},
		},
	}
	if email != "" {
		input.Manager.Email = strPtr(email)
		input.PasswordHash = "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth"
	}
	return input
}

// buildTestWorker creates a worker input under the given manager
func buildTestWorker(managerID uuid.UUID, email string, processIDs ...uuid.UUID) CreateWorkerInput {
	input := CreateWorkerInput{
		Worker: schema.Worker{
			FirstName:   "Suresh",
			LastName:    "Shah",
			MobileNo:    "9800000002",
			ManagerID:   managerID,
			WorkingType: schema.WorkingTypePerJem,
		},
		ProcessIDs: processIDs,
	}
	if email != "" {
		input.Worker.Email = strPtr(email)
		input.PasswordHash = "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth"
	}
	return input
}

// buildTestPacket creates a packet row ready for insertion
func buildTestPacket(packetNo string, weight float64) *schema.Packet {
	return &schema.Packet{
		PacketNo:    packetNo,
		StockWeight: weight,
		Pieces:      1,
		Status:      domain.PacketStatusHold,
	}
}

// buildTestTransfer creates a transfer input between two actors
func buildTestTransfer(packetNo, transactionNo string, fromID, toID uuid.UUID) RecordTransferInput {
	return RecordTransferInput{
		TransactionNo: transactionNo,
		PacketNo:      packetNo,
		FromID:        fromID,
		FromKind:      domain.ActorKindManager,
		ToID:          toID,
		ToKind:        domain.ActorKindWorker,
	}
}

// createTestManager inserts a manager and fails the test on error
func createTestManager(t *testing.T, store Store, email string) *schema.Manager {
	manager, err := store.CreateManager(context.Background(), buildTestManager(email))
	require.NoError(t, err)
	require.NotNil(t, manager)
	return manager
}

// createTestWorker inserts a worker and fails the test on error
func createTestWorker(t *testing.T, store Store, managerID uuid.UUID, email string, processIDs ...uuid.UUID) *schema.Worker {
	worker, err := store.CreateWorker(context.Background(), buildTestWorker(managerID, email, processIDs...))
	require.NoError(t, err)
	require.NotNil(t, worker)
	return worker
}

// =============================================================================
// Test: Admins and Credentials
// =============================================================================

func testCreateAdmin(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates admin with credential", func(t *testing.T) {
		admin, err := store.CreateAdmin(ctx, schema.Admin{
			Username: "boss",
			Email:    "boss@example.com",
		}, "hash")
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, admin.ID)

		got, err := store.GetAdminByID(ctx, admin.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "boss", got.Username)

		credential, err := store.GetCredentialByEmail(ctx, "boss@example.com")
		require.NoError(t, err)
		require.NotNil(t, credential)
		assert.Equal(t, admin.ID, credential.ActorID)
		assert.Equal(t, domain.ActorKindAdmin, credential.ActorKind)
		assert.Equal(t, "hash", credential.PasswordHash)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		_, err := store.CreateAdmin(ctx, schema.Admin{
			Username: "boss2",
			Email:    "boss@example.com",
		}, "hash")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		got, err := store.GetAdminByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown email returns nil", func(t *testing.T) {
		credential, err := store.GetCredentialByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, credential)
	})
}

// =============================================================================
// Test: Managers
// =============================================================================

func testManagerLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create with login creates credential", func(t *testing.T) {
		manager := createTestManager(t, store, "ramesh@example.com")

		credential, err := store.GetCredentialByEmail(ctx, "ramesh@example.com")
		require.NoError(t, err)
		require.NotNil(t, credential)
		assert.Equal(t, manager.ID, credential.ActorID)
		assert.Equal(t, domain.ActorKindManager, credential.ActorKind)
	})

	t.Run("create without login skips credential", func(t *testing.T) {
		manager := createTestManager(t, store, "")
		assert.Nil(t, manager.Email)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		_, err := store.CreateManager(ctx, buildTestManager("ramesh@example.com"))
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("update applies columns", func(t *testing.T) {
		manager := createTestManager(t, store, "update-target@example.com")

		err := store.UpdateManager(ctx, manager.ID, map[string]interface{}{
			"first_name": "Mahesh",
			"city":       "Mumbai",
		})
		require.NoError(t, err)

		got, err := store.GetManagerByID(ctx, manager.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Mahesh", got.FirstName)
		assert.Equal(t, "Mumbai", got.Address.City)
	})

	t.Run("delete removes manager and credential", func(t *testing.T) {
		manager := createTestManager(t, store, "gone@example.com")

		require.NoError(t, store.DeleteManager(ctx, manager.ID))

		got, err := store.GetManagerByID(ctx, manager.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		credential, err := store.GetCredentialByEmail(ctx, "gone@example.com")
		require.NoError(t, err)
		assert.Nil(t, credential)
	})

	t.Run("list returns managers", func(t *testing.T) {
		managers, err := store.ListManagers(ctx, 0, 100)
		require.NoError(t, err)
		assert.NotEmpty(t, managers)
	})
}

// =============================================================================
// Test: Workers
// =============================================================================

func testWorkerLifecycle(t *testing.T, store Store) {
	ctx := context.Background()
	manager := createTestManager(t, store, "")

	laser := &schema.Process{Name: "Laser Cutting"}
	require.NoError(t, store.CreateProcess(ctx, laser))
	polish := &schema.Process{Name: "Polishing"}
	require.NoError(t, store.CreateProcess(ctx, polish))

	t.Run("create assigns processes and credential", func(t *testing.T) {
		worker := createTestWorker(t, store, manager.ID, "suresh@example.com", laser.ID, polish.ID)

		got, err := store.GetWorkerByID(ctx, worker.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, manager.ID, got.ManagerID)
		assert.Len(t, got.Processes, 2)

		credential, err := store.GetCredentialByEmail(ctx, "suresh@example.com")
		require.NoError(t, err)
		require.NotNil(t, credential)
		assert.Equal(t, domain.ActorKindWorker, credential.ActorKind)
	})

	t.Run("worker ids by manager", func(t *testing.T) {
		other := createTestManager(t, store, "")
		w1 := createTestWorker(t, store, other.ID, "")
		w2 := createTestWorker(t, store, other.ID, "")
		createTestWorker(t, store, manager.ID, "")

		ids, err := store.GetWorkerIDsByManagerID(ctx, other.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{w1.ID, w2.ID}, ids)
	})

	t.Run("list restricted to managers", func(t *testing.T) {
		scoped := createTestManager(t, store, "")
		worker := createTestWorker(t, store, scoped.ID, "")

		workers, err := store.ListWorkers(ctx, []uuid.UUID{scoped.ID}, 0, 100)
		require.NoError(t, err)
		require.Len(t, workers, 1)
		assert.Equal(t, worker.ID, workers[0].ID)

		all, err := store.ListWorkers(ctx, nil, 0, 100)
		require.NoError(t, err)
		assert.Greater(t, len(all), 1)

		none, err := store.ListWorkers(ctx, []uuid.UUID{}, 0, 100)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete removes worker, assignments and credential", func(t *testing.T) {
		worker := createTestWorker(t, store, manager.ID, "bye@example.com", laser.ID)

		require.NoError(t, store.DeleteWorker(ctx, worker.ID))

		got, err := store.GetWorkerByID(ctx, worker.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		credential, err := store.GetCredentialByEmail(ctx, "bye@example.com")
		require.NoError(t, err)
		assert.Nil(t, credential)
	})
}

// =============================================================================
// Test: RecordTransfer
// =============================================================================

func testRecordTransfer(t *testing.T, store Store) {
	ctx := context.Background()
	manager := createTestManager(t, store, "")
	worker := createTestWorker(t, store, manager.ID, "")

	t.Run("first transfer creates the chain", func(t *testing.T) {
		packet := buildTestPacket("PKT-T1", 10.5)
		require.NoError(t, store.CreatePacket(ctx, packet))

		input := buildTestTransfer("PKT-T1", "TXN-T1", manager.ID, worker.ID)
		input.NewWeight = floatPtr(10.2)
		input.Grading = datatypes.JSON([]byte(`{"shape":"Round"}`))

		record, err := store.RecordTransfer(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 1, record.Seq)
		assert.Equal(t, "PKT-T1", record.PacketNo)
		assert.NotEqual(t, uuid.Nil, record.ChainID)

		chain, err := store.GetCustodyChainByPacketNo(ctx, "PKT-T1")
		require.NoError(t, err)
		require.NotNil(t, chain)
		assert.Equal(t, record.ChainID, chain.ID)
		require.Len(t, chain.Transfers, 1)

		// Packet moved to the receiver and entered the workflow
		got, err := store.GetPacketByPacketNo(ctx, "PKT-T1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.CurrentOwnerID)
		assert.Equal(t, worker.ID, *got.CurrentOwnerID)
		assert.Equal(t, domain.ActorKindWorker, got.OwnerKind)
		assert.Equal(t, domain.PacketStatusActive, got.Status)
		assert.Equal(t, 10.2, got.StockWeight)
	})

	t.Run("subsequent transfers append in sequence", func(t *testing.T) {
		second, err := store.RecordTransfer(ctx, buildTestTransfer("PKT-T1", "TXN-T2", worker.ID, manager.ID))
		require.NoError(t, err)
		assert.Equal(t, 2, second.Seq)

		third, err := store.RecordTransfer(ctx, buildTestTransfer("PKT-T1", "TXN-T3", manager.ID, worker.ID))
		require.NoError(t, err)
		assert.Equal(t, 3, third.Seq)
		assert.Equal(t, second.ChainID, third.ChainID)

		chain, err := store.GetCustodyChainByPacketNo(ctx, "PKT-T1")
		require.NoError(t, err)
		require.Len(t, chain.Transfers, 3)
		for i, record := range chain.Transfers {
			assert.Equal(t, i+1, record.Seq)
		}
	})

	t.Run("chain works without a packet row", func(t *testing.T) {
		record, err := store.RecordTransfer(ctx, buildTestTransfer("PKT-GHOST", "TXN-G1", manager.ID, worker.ID))
		require.NoError(t, err)
		assert.Equal(t, 1, record.Seq)

		chain, err := store.GetCustodyChainByPacketNo(ctx, "PKT-GHOST")
		require.NoError(t, err)
		require.NotNil(t, chain)
		require.Len(t, chain.Transfers, 1)
	})

	t.Run("chain survives packet deletion", func(t *testing.T) {
		packet := buildTestPacket("PKT-DEL", 5)
		require.NoError(t, store.CreatePacket(ctx, packet))
		_, err := store.RecordTransfer(ctx, buildTestTransfer("PKT-DEL", "TXN-D1", manager.ID, worker.ID))
		require.NoError(t, err)

		require.NoError(t, store.DeletePacket(ctx, packet.ID))

		chain, err := store.GetCustodyChainByPacketNo(ctx, "PKT-DEL")
		require.NoError(t, err)
		require.NotNil(t, chain)
		assert.Len(t, chain.Transfers, 1)
	})

	t.Run("duplicate transaction number fails", func(t *testing.T) {
		_, err := store.RecordTransfer(ctx, buildTestTransfer("PKT-T1", "TXN-T1", manager.ID, worker.ID))
		assert.ErrorIs(t, err, domain.ErrDuplicateTransactionNo)
	})

	t.Run("unknown chain returns nil", func(t *testing.T) {
		chain, err := store.GetCustodyChainByPacketNo(ctx, "PKT-NOWHERE")
		require.NoError(t, err)
		assert.Nil(t, chain)
	})
}

// =============================================================================
// Test: Transfer queries and cancellation
// =============================================================================

func testTransferQueries(t *testing.T, store Store) {
	ctx := context.Background()
	manager := createTestManager(t, store, "")
	worker := createTestWorker(t, store, manager.ID, "")
	outsider := createTestManager(t, store, "")

	_, err := store.RecordTransfer(ctx, buildTestTransfer("PKT-Q1", "TXN-Q1", manager.ID, worker.ID))
	require.NoError(t, err)
	_, err = store.RecordTransfer(ctx, buildTestTransfer("PKT-Q2", "TXN-Q2", worker.ID, manager.ID))
	require.NoError(t, err)
	_, err = store.RecordTransfer(ctx, buildTestTransfer("PKT-Q3", "TXN-Q3", outsider.ID, outsider.ID))
	require.NoError(t, err)

	t.Run("get by transaction number", func(t *testing.T) {
		record, err := store.GetTransferByTransactionNo(ctx, "TXN-Q1")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, manager.ID, record.FromID)
		assert.Equal(t, worker.ID, record.ToID)

		missing, err := store.GetTransferByTransactionNo(ctx, "TXN-MISSING")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list filtered by actor covers either side", func(t *testing.T) {
		records, err := store.ListTransfers(ctx, ListTransfersFilter{
			ActorIDs: []uuid.UUID{worker.ID},
			Limit:    100,
		})
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, record := range records {
			assert.True(t, record.FromID == worker.ID || record.ToID == worker.ID)
		}
	})

	t.Run("list filtered by packet number", func(t *testing.T) {
		records, err := store.ListTransfers(ctx, ListTransfersFilter{
			PacketNo: "PKT-Q3",
			Limit:    100,
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "TXN-Q3", records[0].TransactionNo)
	})

	t.Run("nil actor filter returns everything", func(t *testing.T) {
		records, err := store.ListTransfers(ctx, ListTransfersFilter{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("cancel marks without deleting", func(t *testing.T) {
		require.NoError(t, store.CancelTransfer(ctx, "TXN-Q1", manager.ID))

		record, err := store.GetTransferByTransactionNo(ctx, "TXN-Q1")
		require.NoError(t, err)
		require.NotNil(t, record)
		require.NotNil(t, record.CancelByID)
		assert.Equal(t, manager.ID, *record.CancelByID)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		err := store.CancelTransfer(ctx, "TXN-Q1", worker.ID)
		assert.ErrorIs(t, err, domain.ErrHistoryNotFound)
	})

	t.Run("cancelling unknown transfer fails", func(t *testing.T) {
		err := store.CancelTransfer(ctx, "TXN-MISSING", manager.ID)
		assert.ErrorIs(t, err, domain.ErrHistoryNotFound)
	})
}

// =============================================================================
// Test: Packets
// =============================================================================

func testPacketCRUD(t *testing.T, store Store) {
	ctx := context.Background()

	round := &schema.LookupValue{Kind: domain.LookupKindShape, Name: "Round"}
	require.NoError(t, store.CreateLookupValue(ctx, round))

	t.Run("create and get with grading preloads", func(t *testing.T) {
		packet := buildTestPacket("PKT-C1", 3.3)
		packet.ShapeID = &round.ID
		require.NoError(t, store.CreatePacket(ctx, packet))

		got, err := store.GetPacketByID(ctx, packet.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Shape)
		assert.Equal(t, "Round", got.Shape.Name)

		byNo, err := store.GetPacketByPacketNo(ctx, "PKT-C1")
		require.NoError(t, err)
		require.NotNil(t, byNo)
		assert.Equal(t, packet.ID, byNo.ID)
	})

	t.Run("duplicate packet number fails", func(t *testing.T) {
		err := store.CreatePacket(ctx, buildTestPacket("PKT-C1", 1))
		assert.ErrorIs(t, err, domain.ErrDuplicatePacketNo)
	})

	t.Run("update applies columns", func(t *testing.T) {
		packet := buildTestPacket("PKT-C2", 2)
		require.NoError(t, store.CreatePacket(ctx, packet))

		err := store.UpdatePacket(ctx, packet.ID, map[string]interface{}{
			"stock_weight": 1.8,
			"pieces":       3,
		})
		require.NoError(t, err)

		got, err := store.GetPacketByID(ctx, packet.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.8, got.StockWeight)
		assert.Equal(t, 3, got.Pieces)
	})

	t.Run("list filters by owner and status", func(t *testing.T) {
		manager := createTestManager(t, store, "")
		owned := buildTestPacket("PKT-C3", 4)
		owned.CurrentOwnerID = &manager.ID
		owned.OwnerKind = domain.ActorKindManager
		owned.Status = domain.PacketStatusActive
		require.NoError(t, store.CreatePacket(ctx, owned))

		packets, err := store.ListPackets(ctx, ListPacketsFilter{
			OwnerIDs: []uuid.UUID{manager.ID},
			Limit:    100,
		})
		require.NoError(t, err)
		require.Len(t, packets, 1)
		assert.Equal(t, "PKT-C3", packets[0].PacketNo)

		held, err := store.ListPackets(ctx, ListPacketsFilter{
			OwnerIDs: []uuid.UUID{manager.ID},
			Status:   domain.PacketStatusHold,
			Limit:    100,
		})
		require.NoError(t, err)
		assert.Empty(t, held)

		none, err := store.ListPackets(ctx, ListPacketsFilter{
			OwnerIDs: []uuid.UUID{},
			Limit:    100,
		})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("unknown packet returns nil", func(t *testing.T) {
		got, err := store.GetPacketByPacketNo(ctx, "PKT-MISSING")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Purchases
// =============================================================================

func testPurchaseLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	party := &schema.Party{Name: "Mehta Exports", City: "Surat"}
	require.NoError(t, store.CreateParty(ctx, party))

	t.Run("create and get with preloads", func(t *testing.T) {
		purchase := &schema.Purchase{
			PurchaseType: domain.PurchaseTypeRough,
			PartyID:      &party.ID,
			JanganNo:     "JNG-1001",
			Pieces:       10,
			TotalWeight:  120.5,
		}
		require.NoError(t, store.CreatePurchase(ctx, purchase))

		got, err := store.GetPurchaseByID(ctx, purchase.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Party)
		assert.Equal(t, "Mehta Exports", got.Party.Name)
	})

	t.Run("duplicate jangan number fails", func(t *testing.T) {
		err := store.CreatePurchase(ctx, &schema.Purchase{
			PurchaseType: domain.PurchaseTypeRough,
			JanganNo:     "JNG-1001",
			Pieces:       1,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateJanganNo)
	})

	t.Run("update applies column changes", func(t *testing.T) {
		purchase := &schema.Purchase{
			PurchaseType: domain.PurchaseTypeRough,
			JanganNo:     "JNG-1003",
			Pieces:       5,
		}
		require.NoError(t, store.CreatePurchase(ctx, purchase))

		require.NoError(t, store.UpdatePurchase(ctx, purchase.ID, map[string]interface{}{
			"rate":         450.0,
			"total_weight": 98.7,
			"pieces":       8,
		}))

		got, err := store.GetPurchaseByID(ctx, purchase.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 450.0, got.Rate)
		assert.Equal(t, 98.7, got.TotalWeight)
		assert.Equal(t, 8, got.Pieces)
	})

	t.Run("update to a taken jangan number fails", func(t *testing.T) {
		purchase := &schema.Purchase{
			PurchaseType: domain.PurchaseTypeRough,
			JanganNo:     "JNG-1004",
			Pieces:       1,
		}
		require.NoError(t, store.CreatePurchase(ctx, purchase))

		err := store.UpdatePurchase(ctx, purchase.ID, map[string]interface{}{
			"jangan_no": "JNG-1001",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateJanganNo)
	})

	t.Run("delete leaves split packets in place", func(t *testing.T) {
		purchase := &schema.Purchase{
			PurchaseType: domain.PurchaseTypeRejection,
			JanganNo:     "JNG-1002",
			Pieces:       2,
		}
		require.NoError(t, store.CreatePurchase(ctx, purchase))
		require.NoError(t, store.AddPacketsToPurchase(ctx, purchase.ID, []*schema.Packet{
			buildTestPacket("PKT-P1", 1),
		}))

		require.NoError(t, store.DeletePurchase(ctx, purchase.ID))

		packet, err := store.GetPacketByPacketNo(ctx, "PKT-P1")
		require.NoError(t, err)
		require.NotNil(t, packet)
		require.NotNil(t, packet.PurchaseID)
		assert.Equal(t, purchase.ID, *packet.PurchaseID)
	})

	t.Run("list returns purchases", func(t *testing.T) {
		purchases, err := store.ListPurchases(ctx, 0, 100)
		require.NoError(t, err)
		assert.NotEmpty(t, purchases)
	})
}

func testAddPacketsToPurchase(t *testing.T, store Store) {
	ctx := context.Background()

	purchase := &schema.Purchase{
		PurchaseType: domain.PurchaseTypeRough,
		JanganNo:     "JNG-2001",
		Pieces:       3,
	}
	require.NoError(t, store.CreatePurchase(ctx, purchase))

	t.Run("attaches within the piece count", func(t *testing.T) {
		packets := []*schema.Packet{
			buildTestPacket("PKT-A1", 1.1),
			buildTestPacket("PKT-A2", 1.2),
		}
		require.NoError(t, store.AddPacketsToPurchase(ctx, purchase.ID, packets))

		got, err := store.GetPurchaseByID(ctx, purchase.ID)
		require.NoError(t, err)
		assert.Len(t, got.Packets, 2)
	})

	t.Run("exceeding the piece count fails atomically", func(t *testing.T) {
		packets := []*schema.Packet{
			buildTestPacket("PKT-A3", 1.3),
			buildTestPacket("PKT-A4", 1.4),
		}
		err := store.AddPacketsToPurchase(ctx, purchase.ID, packets)
		assert.ErrorIs(t, err, domain.ErrPurchaseFull)

		// Nothing from the failed batch was attached
		got, err := store.GetPurchaseByID(ctx, purchase.ID)
		require.NoError(t, err)
		assert.Len(t, got.Packets, 2)
	})

	t.Run("filling the remaining slot succeeds", func(t *testing.T) {
		require.NoError(t, store.AddPacketsToPurchase(ctx, purchase.ID, []*schema.Packet{
			buildTestPacket("PKT-A5", 1.5),
		}))
	})

	t.Run("unknown purchase fails", func(t *testing.T) {
		err := store.AddPacketsToPurchase(ctx, uuid.New(), []*schema.Packet{
			buildTestPacket("PKT-A6", 1.6),
		})
		assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
	})

	t.Run("duplicate packet number rolls back the batch", func(t *testing.T) {
		other := &schema.Purchase{
			PurchaseType: domain.PurchaseTypeRough,
			JanganNo:     "JNG-2002",
			Pieces:       5,
		}
		require.NoError(t, store.CreatePurchase(ctx, other))

		err := store.AddPacketsToPurchase(ctx, other.ID, []*schema.Packet{
			buildTestPacket("PKT-A7", 1.7),
			buildTestPacket("PKT-A1", 1.1),
		})
		assert.ErrorIs(t, err, domain.ErrDuplicatePacketNo)

		got, err := store.GetPurchaseByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Packets)
	})
}

// =============================================================================
// Test: Master data
// =============================================================================

func testLookupValues(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and list by kind", func(t *testing.T) {
		for _, name := range []string{"Round", "Pear", "Oval"} {
			require.NoError(t, store.CreateLookupValue(ctx, &schema.LookupValue{
				Kind: domain.LookupKindShape,
				Name: name,
			}))
		}
		require.NoError(t, store.CreateLookupValue(ctx, &schema.LookupValue{
			Kind: domain.LookupKindColor,
			Name: "D",
		}))

		shapes, err := store.ListLookupValues(ctx, domain.LookupKindShape)
		require.NoError(t, err)
		require.Len(t, shapes, 3)
		assert.Equal(t, "Oval", shapes[0].Name)
	})

	t.Run("same name under another kind is allowed", func(t *testing.T) {
		err := store.CreateLookupValue(ctx, &schema.LookupValue{
			Kind: domain.LookupKindPurity,
			Name: "Round",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate kind and name fails", func(t *testing.T) {
		err := store.CreateLookupValue(ctx, &schema.LookupValue{
			Kind: domain.LookupKindShape,
			Name: "Round",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateLookupValue)
	})

	t.Run("get by ids", func(t *testing.T) {
		shapes, err := store.ListLookupValues(ctx, domain.LookupKindShape)
		require.NoError(t, err)

		values, err := store.GetLookupValuesByIDs(ctx, []uuid.UUID{shapes[0].ID, shapes[1].ID})
		require.NoError(t, err)
		assert.Len(t, values, 2)

		empty, err := store.GetLookupValuesByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("delete", func(t *testing.T) {
		value := &schema.LookupValue{Kind: domain.LookupKindCut, Name: "Excellent"}
		require.NoError(t, store.CreateLookupValue(ctx, value))
		require.NoError(t, store.DeleteLookupValue(ctx, value.ID))

		values, err := store.ListLookupValues(ctx, domain.LookupKindCut)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

func testProcessesAndParties(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("processes", func(t *testing.T) {
		for _, name := range []string{"Sawing", "Bruting"} {
			require.NoError(t, store.CreateProcess(ctx, &schema.Process{Name: name}))
		}

		err := store.CreateProcess(ctx, &schema.Process{Name: "Sawing"})
		assert.ErrorIs(t, err, domain.ErrDuplicateLookupValue)

		processes, err := store.ListProcesses(ctx)
		require.NoError(t, err)
		require.Len(t, processes, 2)
		assert.Equal(t, "Bruting", processes[0].Name)

		require.NoError(t, store.DeleteProcess(ctx, processes[0].ID))
		processes, err = store.ListProcesses(ctx)
		require.NoError(t, err)
		assert.Len(t, processes, 1)
	})

	t.Run("parties", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, store.CreateParty(ctx, &schema.Party{
				Name: fmt.Sprintf("Supplier %d", i),
			}))
		}

		parties, err := store.ListParties(ctx)
		require.NoError(t, err)
		assert.Len(t, parties, 3)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs the full store suite against an implementation. Each test
// gets a freshly initialized database.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateAdmin", testCreateAdmin},
		{"ManagerLifecycle", testManagerLifecycle},
		{"WorkerLifecycle", testWorkerLifecycle},
		{"RecordTransfer", testRecordTransfer},
		{"TransferQueries", testTransferQueries},
		{"PacketCRUD", testPacketCRUD},
		{"PurchaseLifecycle", testPurchaseLifecycle},
		{"AddPacketsToPurchase", testAddPacketsToPurchase},
		{"LookupValues", testLookupValues},
		{"ProcessesAndParties", testProcessesAndParties},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
