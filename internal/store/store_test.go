package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

const testPrincipal = "tester"

// =============================================================================
// Test Data Builders
// =============================================================================

// testRefs holds the reference rows a guarantee needs
type testRefs struct {
	ObjectID     int64
	LetterTypeID int64
	ContractorID int64
	EntityID     int64
	EntityB      int64
	CurrencyID   int64
}

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedRefs creates one row of every reference table
func seedRefs(t *testing.T, store Store, ruc string) testRefs {
	ctx := context.Background()

	object := schema.GuaranteeObject{Description: "Mejoramiento del camino vecinal", CUI: strPtr("2456789"), Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.GuaranteeObjects().Create(ctx, &object))

	letterType := schema.LetterType{Description: "Fiel cumplimiento", Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.LetterTypes().Create(ctx, &letterType))

	contractor := schema.Contractor{BusinessName: "Constructora Andina SAC", RUC: ruc, Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.Contractors().Create(ctx, &contractor))

	entityA := schema.FinancialEntity{Description: "Banco de Crédito", Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.FinancialEntities().Create(ctx, &entityA))

	entityB := schema.FinancialEntity{Description: "Caja Municipal", Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.FinancialEntities().Create(ctx, &entityB))

	currencies, _, err := store.CurrencyTypes().List(ctx, ListQuery{Filters: map[string]any{"code": "PEN"}})
	require.NoError(t, err)
	require.Len(t, currencies, 1)

	return testRefs{
		ObjectID:     object.ID,
		LetterTypeID: letterType.ID,
		ContractorID: contractor.ID,
		EntityID:     entityA.ID,
		EntityB:      entityB.ID,
		CurrencyID:   currencies[0].ID,
	}
}

// buildIssuance creates an issuance record with the given validity end
func buildIssuance(refs testRefs, guaranteeID int64, letterNumber string, start, end time.Time) schema.History {
	entity := refs.EntityID
	currency := refs.CurrencyID
	return schema.History{
		GuaranteeID:       guaranteeID,
		StatusID:          int64(domain.StatusIssuance),
		LetterNumber:      strPtr(letterNumber),
		FinancialEntityID: &entity,
		IssueDate:         schema.DateFromTime(&start),
		ValidityStart:     schema.DateFromTime(&start),
		ValidityEnd:       schema.DateFromTime(&end),
		CurrencyTypeID:    &currency,
		Amount:            decimal.NewNullDecimal(decimal.RequireFromString("15000.50")),
		Audit:             schema.NewAudit(testPrincipal),
	}
}

// createGuarantee creates a guarantee with its issuance record
func createGuarantee(t *testing.T, store Store, refs testRefs, letterNumber string, start, end time.Time) (*schema.Guarantee, *schema.History) {
	ctx := context.Background()

	g := schema.Guarantee{
		ObjectID:     refs.ObjectID,
		LetterTypeID: refs.LetterTypeID,
		ContractorID: refs.ContractorID,
		Audit:        schema.NewAudit(testPrincipal),
	}
	require.NoError(t, store.CreateGuarantee(ctx, &g))

	h := buildIssuance(refs, g.ID, letterNumber, start, end)
	require.NoError(t, store.CreateHistory(ctx, &h))

	return &g, &h
}

// appendClosing appends a record without letter, window or amount
func appendClosing(t *testing.T, store Store, guaranteeID int64, status domain.StatusID, entityID *int64, issued time.Time) *schema.History {
	h := schema.History{
		GuaranteeID:       guaranteeID,
		StatusID:          int64(status),
		FinancialEntityID: entityID,
		IssueDate:         schema.DateFromTime(&issued),
		Audit:             schema.NewAudit(testPrincipal),
	}
	require.NoError(t, store.CreateHistory(context.Background(), &h))
	return &h
}

// =============================================================================
// Reference data
// =============================================================================

func testReferenceCRUD(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create, get, update and list contractors", func(t *testing.T) {
		c := schema.Contractor{BusinessName: "Consorcio Vial Sur", RUC: "20100100101", Audit: schema.NewAudit(testPrincipal)}
		require.NoError(t, store.Contractors().Create(ctx, &c))
		assert.NotZero(t, c.ID)

		got, err := store.Contractors().Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Consorcio Vial Sur", got.BusinessName)
		assert.Equal(t, testPrincipal, got.CreatedBy)

		updated, err := store.Contractors().Update(ctx, c.ID, map[string]any{"business_name": "Consorcio Vial del Sur", "updated_by": "editor"})
		require.NoError(t, err)
		assert.Equal(t, "Consorcio Vial del Sur", updated.BusinessName)
		assert.Equal(t, "editor", updated.UpdatedBy)
		assert.Equal(t, testPrincipal, updated.CreatedBy)

		rows, total, err := store.Contractors().List(ctx, ListQuery{Search: "vial del"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, c.ID, rows[0].ID)

		rows, _, err = store.Contractors().List(ctx, ListQuery{Search: "20100100"})
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("duplicate tax id is an integrity error naming the field", func(t *testing.T) {
		c := schema.Contractor{BusinessName: "Primero", RUC: "20200200202", Audit: schema.NewAudit(testPrincipal)}
		require.NoError(t, store.Contractors().Create(ctx, &c))

		err := store.Transaction(ctx, func(tx Store) error {
			dup := schema.Contractor{BusinessName: "Segundo", RUC: "20200200202", Audit: schema.NewAudit(testPrincipal)}
			return tx.Contractors().Create(ctx, &dup)
		})
		require.Error(t, err)
		var integrity *domain.IntegrityError
		require.ErrorAs(t, err, &integrity)
		assert.Equal(t, "ruc", integrity.Field)
	})

	t.Run("duplicate currency code is an integrity error", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			dup := schema.CurrencyType{Description: "Soles otra vez", Code: "PEN", Symbol: "S/", Audit: schema.NewAudit(testPrincipal)}
			return tx.CurrencyTypes().Create(ctx, &dup)
		})
		var integrity *domain.IntegrityError
		require.ErrorAs(t, err, &integrity)
		assert.Equal(t, "code", integrity.Field)
	})

	t.Run("ordering and filters are whitelisted", func(t *testing.T) {
		_, _, err := store.LetterTypes().List(ctx, ListQuery{Ordering: "-password"})
		assert.True(t, domain.IsValidation(err))

		_, _, err = store.LetterTypes().List(ctx, ListQuery{Filters: map[string]any{"description": "x"}})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("seeded statuses carry the active flag", func(t *testing.T) {
		issuance, err := store.GuaranteeStatuses().Get(ctx, int64(domain.StatusIssuance))
		require.NoError(t, err)
		assert.True(t, issuance.IsActive)

		ret, err := store.GuaranteeStatuses().Get(ctx, int64(domain.StatusReturn))
		require.NoError(t, err)
		assert.False(t, ret.IsActive)

		inactive, total, err := store.GuaranteeStatuses().List(ctx, ListQuery{Filters: map[string]any{"is_active": false}, Ordering: "id"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, int64(domain.StatusReturn), inactive[0].ID)
		assert.Equal(t, int64(domain.StatusExecution), inactive[1].ID)
	})

	t.Run("missing rows are not found", func(t *testing.T) {
		_, err := store.FinancialEntities().Get(ctx, 987654)
		assert.True(t, domain.IsNotFound(err))

		_, err = store.FinancialEntities().Update(ctx, 987654, map[string]any{"description": "x"})
		assert.True(t, domain.IsNotFound(err))

		err = store.FinancialEntities().Delete(ctx, 987654)
		assert.True(t, domain.IsNotFound(err))

		exists, err := store.FinancialEntities().Exists(ctx, 987654)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func testReferenceDeleteInUse(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20300300303")
	createGuarantee(t, store, refs, "LG-001", day(2025, 1, 1), day(2025, 12, 31))

	err := store.Transaction(ctx, func(tx Store) error {
		return tx.Contractors().Delete(ctx, refs.ContractorID)
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	err = store.Transaction(ctx, func(tx Store) error {
		return tx.FinancialEntities().Delete(ctx, refs.EntityID)
	})
	assert.True(t, domain.IsConflict(err))

	// entity B is not referenced by any history record
	require.NoError(t, store.FinancialEntities().Delete(ctx, refs.EntityB))

	unused := schema.Contractor{BusinessName: "Sin cartas", RUC: "20300300399", Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.Contractors().Create(ctx, &unused))
	require.NoError(t, store.Contractors().Delete(ctx, unused.ID))
}

// =============================================================================
// Guarantees and history chain
// =============================================================================

func testHistoryChain(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20400400404")
	g, issuance := createGuarantee(t, store, refs, "LG-100", day(2025, 1, 1), day(2025, 6, 30))

	t.Run("current record is the greatest id", func(t *testing.T) {
		id, err := store.GetCurrentHistoryID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, issuance.ID, id)

		renewal := buildIssuance(refs, g.ID, "LG-100-R1", day(2025, 7, 1), day(2025, 12, 31))
		renewal.StatusID = int64(domain.StatusRenewal)
		renewal.FinancialEntityID = nil
		require.NoError(t, store.CreateHistory(ctx, &renewal))
		assert.Greater(t, renewal.ID, issuance.ID)

		current, err := store.GetCurrentHistory(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, renewal.ID, current.ID)
		require.NotNil(t, current.Status)
		assert.Equal(t, "Renovación", current.Status.Description)
		require.NotNil(t, current.Guarantee)
		assert.Equal(t, refs.ContractorID, current.Guarantee.Contractor.ID)

		count, err := store.CountHistories(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("financial entity is inherited from the most recent non-null record", func(t *testing.T) {
		h, err := store.FindInheritableFinancialEntity(ctx, g.ID)
		require.NoError(t, err)
		require.NotNil(t, h)
		assert.Equal(t, issuance.ID, h.ID)
		assert.Equal(t, refs.EntityID, *h.FinancialEntityID)
	})

	t.Run("guarantee detail preloads the ordered chain", func(t *testing.T) {
		detail, err := store.GetGuarantee(ctx, g.ID, true)
		require.NoError(t, err)
		require.Len(t, detail.Histories, 2)
		assert.Equal(t, issuance.ID, detail.Histories[0].ID)
		assert.Equal(t, "Mejoramiento del camino vecinal", detail.Object.Description)
		assert.Equal(t, "Fiel cumplimiento", detail.LetterType.Description)
	})

	t.Run("update history applies partial fields", func(t *testing.T) {
		require.NoError(t, store.UpdateHistory(ctx, issuance.ID, map[string]any{"comments": "corregido", "updated_by": "editor"}))
		h, err := store.GetHistory(ctx, issuance.ID)
		require.NoError(t, err)
		assert.Equal(t, "corregido", *h.Comments)
		assert.Equal(t, "LG-100", *h.LetterNumber)
		assert.Equal(t, "editor", h.UpdatedBy)
	})

	t.Run("lock guarantee inside a transaction", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.LockGuarantee(ctx, g.ID)
		})
		require.NoError(t, err)

		err = store.Transaction(ctx, func(tx Store) error {
			return tx.LockGuarantee(ctx, 987654)
		})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("deleting a guarantee cascades history and files", func(t *testing.T) {
		f := schema.File{HistoryID: issuance.ID, FileName: "carta.pdf", Audit: schema.NewAudit(testPrincipal)}
		require.NoError(t, store.CreateFile(ctx, &f))

		require.NoError(t, store.DeleteGuarantee(ctx, g.ID))

		_, err := store.GetGuarantee(ctx, g.ID, false)
		assert.True(t, domain.IsNotFound(err))
		_, err = store.GetHistory(ctx, issuance.ID)
		assert.True(t, domain.IsNotFound(err))
		_, err = store.GetFile(ctx, f.ID)
		assert.True(t, domain.IsNotFound(err))

		id, err := store.GetCurrentHistoryID(ctx, g.ID)
		require.NoError(t, err)
		assert.Zero(t, id)
	})
}

func testDeleteHistoryExposesPrevious(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20500500505")
	g, issuance := createGuarantee(t, store, refs, "LG-200", day(2025, 1, 1), day(2025, 6, 30))
	ret := appendClosing(t, store, g.ID, domain.StatusReturn, &refs.EntityID, day(2025, 7, 1))

	require.NoError(t, store.DeleteHistory(ctx, ret.ID))

	current, err := store.GetCurrentHistory(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, issuance.ID, current.ID)

	err = store.DeleteHistory(ctx, ret.ID)
	assert.True(t, domain.IsNotFound(err))
}

func testHistoryCheckConstraints(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20600600606")
	g, _ := createGuarantee(t, store, refs, "LG-300", day(2025, 1, 1), day(2025, 6, 30))

	err := store.Transaction(ctx, func(tx Store) error {
		h := buildIssuance(refs, g.ID, "LG-300-X", day(2025, 6, 1), day(2025, 1, 1))
		h.StatusID = int64(domain.StatusRenewal)
		return tx.CreateHistory(ctx, &h)
	})
	assert.True(t, domain.IsValidation(err))

	err = store.Transaction(ctx, func(tx Store) error {
		h := buildIssuance(refs, g.ID, "LG-300-Y", day(2025, 1, 1), day(2025, 6, 1))
		h.StatusID = 987654
		return tx.CreateHistory(ctx, &h)
	})
	assert.True(t, domain.IsValidation(err))
}

// =============================================================================
// Files
// =============================================================================

func testFiles(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20700700707")
	g, issuance := createGuarantee(t, store, refs, "LG-400", day(2025, 1, 1), day(2025, 6, 30))

	f1 := schema.File{HistoryID: issuance.ID, FileName: "carta.pdf", Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.CreateFile(ctx, &f1))
	assert.Nil(t, f1.BlobKey)

	require.NoError(t, store.SetFileBlobKey(ctx, f1.ID, "1.pdf", 2048))
	got, err := store.GetFile(ctx, f1.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BlobKey)
	assert.Equal(t, "1.pdf", *got.BlobKey)
	assert.Equal(t, int64(2048), got.Size)

	f2 := schema.File{HistoryID: issuance.ID, FileName: "adenda.pdf", Audit: schema.NewAudit(testPrincipal)}
	require.NoError(t, store.CreateFile(ctx, &f2))

	byHistory, err := store.ListFilesByHistory(ctx, issuance.ID)
	require.NoError(t, err)
	require.Len(t, byHistory, 2)
	assert.Equal(t, f1.ID, byHistory[0].ID)

	byGuarantee, err := store.ListFilesByGuarantee(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, byGuarantee, 2)

	require.NoError(t, store.DeleteFile(ctx, f2.ID))
	assert.True(t, domain.IsNotFound(store.DeleteFile(ctx, f2.ID)))
}

// =============================================================================
// Reports
// =============================================================================

func testCurrentRecordReports(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20800800808")
	today := day(2025, 11, 17)

	_, expired := createGuarantee(t, store, refs, "LG-EXP", day(2025, 1, 1), today.AddDate(0, 0, -1))
	_, expiring := createGuarantee(t, store, refs, "LG-SOON", day(2025, 1, 1), today.AddDate(0, 0, 5))
	_, valid := createGuarantee(t, store, refs, "LG-OK", day(2025, 1, 1), today.AddDate(0, 0, 20))

	// a returned guarantee never shows up, whatever its former validity
	closed, _ := createGuarantee(t, store, refs, "LG-RET", day(2025, 1, 1), today.AddDate(0, 0, -3))
	appendClosing(t, store, closed.ID, domain.StatusReturn, &refs.EntityID, today)

	until := today.AddDate(0, 0, 15)
	scope := GuaranteeFilter{ContractorID: &refs.ContractorID}

	vencidas, err := store.ListCurrentHistories(ctx, CurrentFilter{GuaranteeFilter: scope, ActiveOnly: true, EndBefore: &today})
	require.NoError(t, err)
	require.Len(t, vencidas, 1)
	assert.Equal(t, expired.ID, vencidas[0].ID)
	require.NotNil(t, vencidas[0].Guarantee)
	assert.Equal(t, "Mejoramiento del camino vecinal", vencidas[0].Guarantee.Object.Description)

	porVencer, err := store.ListCurrentHistories(ctx, CurrentFilter{GuaranteeFilter: scope, ActiveOnly: true, EndAfter: &today, EndUntil: &until})
	require.NoError(t, err)
	require.Len(t, porVencer, 1)
	assert.Equal(t, expiring.ID, porVencer[0].ID)

	vigentes, err := store.CountCurrentHistories(ctx, CurrentFilter{GuaranteeFilter: scope, ActiveOnly: true, EndAfter: &until})
	require.NoError(t, err)
	assert.Equal(t, int64(1), vigentes)

	all, err := store.ListCurrentHistories(ctx, CurrentFilter{GuaranteeFilter: scope})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	// ordered by validity end, records without a window last
	assert.Equal(t, expired.ID, all[0].ID)
	assert.Equal(t, valid.ID, all[2].ID)
	assert.Nil(t, all[3].ValidityEnd)
}

func testValidAtAndPeriodReports(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20900900909")

	g, issuance := createGuarantee(t, store, refs, "LG-500", day(2025, 1, 1), day(2025, 3, 31))
	renewal := buildIssuance(refs, g.ID, "LG-500-R1", day(2025, 4, 1), day(2025, 6, 30))
	renewal.StatusID = int64(domain.StatusRenewal)
	require.NoError(t, store.CreateHistory(ctx, &renewal))
	executed := appendClosing(t, store, g.ID, domain.StatusExecution, &refs.EntityID, day(2025, 5, 10))

	scope := GuaranteeFilter{ContractorID: &refs.ContractorID}

	t.Run("valid at scans the full chain", func(t *testing.T) {
		rows, err := store.ListValidAt(ctx, day(2025, 3, 31), scope)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, issuance.ID, rows[0].ID)

		rows, err = store.ListValidAt(ctx, day(2025, 4, 1), scope)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, renewal.ID, rows[0].ID)

		rows, err = store.ListValidAt(ctx, day(2025, 7, 1), scope)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("by status in period with previous record", func(t *testing.T) {
		rows, err := store.ListByStatusInPeriod(ctx, int64(domain.StatusExecution), day(2025, 5, 1), day(2025, 5, 31), scope)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, executed.ID, rows[0].ID)

		rows, err = store.ListByStatusInPeriod(ctx, int64(domain.StatusExecution), day(2025, 6, 1), day(2025, 6, 30), scope)
		require.NoError(t, err)
		assert.Empty(t, rows)

		previous, err := store.FindPreviousHistories(ctx, []int64{executed.ID, issuance.ID})
		require.NoError(t, err)
		require.Len(t, previous, 2)
		assert.Equal(t, issuance.ID, previous[0].HistoryID)
		assert.Nil(t, previous[0].PreviousID)
		assert.Equal(t, executed.ID, previous[1].HistoryID)
		require.NotNil(t, previous[1].PreviousID)
		assert.Equal(t, renewal.ID, *previous[1].PreviousID)

		originals, err := store.GetHistoriesByIDs(ctx, []int64{*previous[1].PreviousID})
		require.NoError(t, err)
		require.Len(t, originals, 1)
		assert.Equal(t, "LG-500-R1", *originals[0].LetterNumber)
	})
}

func testGuaranteeListAndSearch(t *testing.T, store Store) {
	ctx := context.Background()
	refs := seedRefs(t, store, "20111222333")
	g1, _ := createGuarantee(t, store, refs, "CF-2025-0001", day(2025, 1, 1), day(2025, 12, 31))
	g2, _ := createGuarantee(t, store, refs, "CF-2025-0002", day(2025, 1, 1), day(2025, 12, 31))

	t.Run("search by each field", func(t *testing.T) {
		rows, err := store.SearchGuarantees(ctx, SearchByLetterNumber, "0002")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, g2.ID, rows[0].ID)

		rows, err = store.SearchGuarantees(ctx, SearchByContractorRUC, "20111222")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, g2.ID, rows[0].ID)

		rows, err = store.SearchGuarantees(ctx, SearchByContractorName, "andina")
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = store.SearchGuarantees(ctx, SearchByCUI, "2456789")
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = store.SearchGuarantees(ctx, SearchByDescription, "CAMINO")
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = store.SearchGuarantees(ctx, SearchByLetterNumber, "100%")
		require.NoError(t, err)
		assert.Empty(t, rows)

		_, err = store.SearchGuarantees(ctx, SearchField("owner"), "x")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("list with filters, search and history", func(t *testing.T) {
		rows, total, err := store.ListGuarantees(ctx, GuaranteeQuery{
			GuaranteeFilter: GuaranteeFilter{ContractorID: &refs.ContractorID},
			ListQuery:       ListQuery{Ordering: "id"},
			WithHistory:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, rows, 2)
		assert.Equal(t, g1.ID, rows[0].ID)
		require.Len(t, rows[0].Histories, 1)
		assert.Equal(t, "CF-2025-0001", *rows[0].Histories[0].LetterNumber)

		rows, total, err = store.ListGuarantees(ctx, GuaranteeQuery{
			GuaranteeFilter: GuaranteeFilter{ContractorID: &refs.ContractorID},
			ListQuery:       ListQuery{Search: "0001"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, g1.ID, rows[0].ID)

		rows, _, err = store.ListGuarantees(ctx, GuaranteeQuery{
			GuaranteeFilter: GuaranteeFilter{FinancialEntityID: &refs.EntityB},
		})
		require.NoError(t, err)
		assert.Empty(t, rows)

		_, _, err = store.ListGuarantees(ctx, GuaranteeQuery{ListQuery: ListQuery{Filters: map[string]any{"owner": "x"}}})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("update guarantee references", func(t *testing.T) {
		other := schema.LetterType{Description: "Adelanto directo", Audit: schema.NewAudit(testPrincipal)}
		require.NoError(t, store.LetterTypes().Create(ctx, &other))

		require.NoError(t, store.UpdateGuarantee(ctx, g1.ID, map[string]any{"letter_type_id": other.ID, "updated_by": "editor"}))
		got, err := store.GetGuarantee(ctx, g1.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "Adelanto directo", got.LetterType.Description)
		assert.Equal(t, "editor", got.UpdatedBy)

		assert.True(t, domain.IsNotFound(store.UpdateGuarantee(ctx, 987654, map[string]any{"letter_type_id": other.ID})))
	})
}

// RunStoreTests runs all store tests against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ReferenceCRUD", testReferenceCRUD},
		{"ReferenceDeleteInUse", testReferenceDeleteInUse},
		{"HistoryChain", testHistoryChain},
		{"DeleteHistoryExposesPrevious", testDeleteHistoryExposesPrevious},
		{"HistoryCheckConstraints", testHistoryCheckConstraints},
		{"Files", testFiles},
		{"CurrentRecordReports", testCurrentRecordReports},
		{"ValidAtAndPeriodReports", testValidAtAndPeriodReports},
		{"GuaranteeListAndSearch", testGuaranteeListAndSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
