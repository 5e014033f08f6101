package factory

import (
	"time"

	"github.com/tmazur/sketchbluff/internal/dependencies/mocks"
	"github.com/tmazur/sketchbluff/internal/storage/memory"
	"github.com/tmazur/sketchbluff/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestPhrases loads a small suggestion pool for testing
func (t *TestApp) LoadTestPhrases() {
	t.PhrasesService.LoadPhrases([]string{
		"a cat stuck in a vending machine",
		"grandma winning an arm wrestling match",
		"a snowman on a beach holiday",
		"two pigeons arguing over a chip",
		"an octopus doing the laundry",
		"a dragon afraid of birthday candles",
		"a robot learning to ride a bicycle",
		"a penguin delivering pizza",
	})
}
