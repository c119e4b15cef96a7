package logging

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp уводит тест во временную директорию, чтобы файлы logs/
// не засоряли рабочее дерево.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		_ = GetLoggerManager().CloseAll()
		globalLogger = nil
		require.NoError(t, os.Chdir(old))
	})
}

func TestLoggerManagerCachesInstances(t *testing.T) {
	chdirTemp(t)
	lm := GetLoggerManager()

	first, err := lm.GetLogger("render")
	require.NoError(t, err, "создание логгера не должно падать")
	second, err := lm.GetLogger("render")
	require.NoError(t, err)
	assert.Same(t, first, second, "повторный запрос компонента должен вернуть тот же экземпляр")

	other, err := lm.GetLogger("tiles")
	require.NoError(t, err)
	assert.NotSame(t, first, other, "разные компоненты получают разные логгеры")

	assert.ElementsMatch(t, []string{"render", "tiles"}, lm.ListComponents())
}

func TestLoggerManagerConcurrentAccess(t *testing.T) {
	chdirTemp(t)
	lm := GetLoggerManager()

	const workers = 16
	results := make([]*Logger, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = lm.MustGetLogger("worker")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i],
			"конкурентные запросы одного компонента должны вернуть один экземпляр")
	}
}

func TestLoggerManagerSetLogLevel(t *testing.T) {
	chdirTemp(t)
	lm := GetLoggerManager()

	logger, err := lm.GetLogger("render")
	require.NoError(t, err)

	require.NoError(t, lm.SetLogLevel("render", WARN, DEBUG))
	assert.Equal(t, WARN, logger.minConsoleLevel)
	assert.Equal(t, DEBUG, logger.minFileLevel)

	assert.Error(t, lm.SetLogLevel("unknown", INFO, INFO),
		"незарегистрированный компонент должен давать ошибку")
}

func TestLoggerManagerCloseAll(t *testing.T) {
	chdirTemp(t)
	lm := GetLoggerManager()

	first, err := lm.GetLogger("render")
	require.NoError(t, err)
	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents(), "после CloseAll реестр должен быть пуст")

	second, err := lm.GetLogger("render")
	require.NoError(t, err)
	assert.NotSame(t, first, second, "после CloseAll компонент пересоздаётся")
}

func TestInitLoggerRegistersInManager(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, InitLogger())
	assert.Same(t, globalLogger, GetComponentLogger("noisegen"),
		"глобальный логгер и компонент noisegen — один экземпляр")

	render := GetRenderLogger()
	tiles := GetTileServerLogger()
	assert.Same(t, render, GetRenderLogger())
	assert.Same(t, tiles, GetTileServerLogger())
	assert.ElementsMatch(t, []string{"noisegen", "render", "tiles"},
		GetLoggerManager().ListComponents())
}
