package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

var log = logging.Logger("notion-logger")

var DefaultLogLevel = logging.LevelInfo

var m = sync.Mutex{}

var defaultCfg = logging.Config{
	Format: logging.ColorizedOutput,
	Level:  logging.LevelInfo,
	Stderr: true,
	Stdout: false,
}

// NamedLevel binds a subsystem name pattern to a log level.
type NamedLevel struct {
	Name  string
	Level string
}

func init() {
	logging.SetupLogging(defaultCfg)
}

func Logger(system string) *zap.SugaredLogger {
	return &logging.Logger(system).SugaredLogger
}

// LevelsFromStr parses a string of the form "name1=DEBUG;prefix*=WARN;*=ERROR" into a slice of NamedLevel
// it may be useful to parse the log level from the OS env var
func LevelsFromStr(s string) (levels []NamedLevel) {
	for _, kv := range strings.Split(s, ";") {
		if kv == "" {
			continue
		}
		parts := strings.Split(kv, "=")
		var key, value string
		if len(parts) == 1 {
			key = "*"
			value = strings.TrimSpace(parts[0])
		} else if len(parts) == 2 {
			key = strings.TrimSpace(parts[0])
			value = strings.TrimSpace(parts[1])
		} else {
			fmt.Printf("invalid log level format. It should be something like `prefix*=LEVEL;*suffix=LEVEL`, where LEVEL is one of valid log levels\n")
			continue
		}
		if key == "" || value == "" {
			continue
		}

		_, err := zap.ParseAtomicLevel(value)
		if err != nil {
			fmt.Printf("Can't parse log level %s: %s\n", parts[0], err.Error())
			continue
		}
		levels = append(levels, NamedLevel{Name: key, Level: value})
	}
	return levels
}

// ApplyLevels matches every registered subsystem against the patterns in str
// and sets the matched levels. An empty str resets all subsystems to the
// default level.
func ApplyLevels(str string) {
	m.Lock()
	defer m.Unlock()
	logLevels := make(map[string]string)
	for _, nl := range LevelsFromStr(str) {
		subsystemPattern, err := glob.Compile(nl.Name)
		if err != nil {
			log.Errorf("failed to parse glob pattern '%s': %v", nl.Name, err)
			continue
		}
		for _, subsystem := range logging.GetSubsystems() {
			if subsystemPattern.Match(subsystem) {
				logLevels[subsystem] = nl.Level
			}
		}
	}

	if len(logLevels) == 0 {
		logging.SetAllLoggers(DefaultLogLevel)
		return
	}

	for subsystem, level := range logLevels {
		err := logging.SetLogLevel(subsystem, level)
		if err != nil {
			if err != logging.ErrNoSuchLogger {
				log.Errorf("subsystem %s has incorrect log level '%s': %v", subsystem, level, err)
			}
		}
	}
}

func ApplyLevelsFromEnv() {
	ApplyLevels(os.Getenv("NOTION_LOG_LEVEL"))
}
