package conv

import (
	ftime "github.com/viant/tosass/format/time"
	"go.uber.org/zap"
)

var (
	defaultTruthy = []string{"true", "yes"}
	defaultFalsey = []string{"false", "no"}

	defaultUnits = []string{
		"px", "em", "rem", "ex", "ch", "vw", "vh", "vmin", "vmax",
		"cm", "mm", "q", "in", "pt", "pc", "%",
		"deg", "grad", "rad", "turn", "s", "ms", "hz", "khz",
		"dpi", "dpcm", "dppx", "fr",
	}

	//channelCodes lists channel codes in color space priority order
	channelCodes = []string{"r", "g", "b", "a", "h", "s", "l", "v", "c", "m", "y", "k"}

	defaultChannels = map[string][]string{
		"r": {"red"},
		"g": {"green"},
		"b": {"blue"},
		"a": {"alpha"},
		"h": {"hue"},
		"s": {"saturation"},
		"l": {"lightness"},
		"v": {"value"},
		"c": {"cyan"},
		"m": {"magenta"},
		"y": {"yellow"},
		"k": {"black"},
	}
)

const (
	defaultDateLayout     = "Mon, 02 Jan 2006 15:04:05 GMT"
	defaultDateOnlyLayout = "2006-01-02"
	isoLayout             = "2006-01-02T15:04:05.000Z07:00"
)

// settings represents compiled, read only options
type settings struct {
	truthy       map[string]bool
	falsey       map[string]bool
	aliases      map[string]string
	units        map[string]bool
	timeIncluded bool
	dateLayout   string
	caseFormat   string
	logger       *zap.Logger
}

func newSettings(config *Config) *settings {
	if config == nil {
		config = &Config{}
	}
	ret := &settings{
		truthy:       wordSet(defaultTruthy, config.Truthy),
		falsey:       wordSet(defaultFalsey, config.Falsey),
		units:        wordSet(defaultUnits, config.Units),
		aliases:      make(map[string]string),
		timeIncluded: true,
		caseFormat:   config.CaseFormat,
		logger:       config.Logger,
	}
	if config.DateIncludesTime != nil {
		ret.timeIncluded = *config.DateIncludesTime
	}
	if config.DateFormat != "" {
		ret.dateLayout = ftime.DateFormatToTimeLayout(config.DateFormat)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	ret.logger = ret.logger.Named("tosass")
	for _, code := range channelCodes {
		ret.addAlias(code, code)
		for _, alias := range defaultChannels[code] {
			ret.addAlias(alias, code)
		}
	}
	for _, code := range channelCodes {
		for _, alias := range config.Channels[code] {
			ret.addAlias(alias, code)
		}
	}
	return ret
}

func (s *settings) addAlias(alias, code string) {
	key := fold(alias)
	if key == "" {
		return
	}
	if _, ok := s.aliases[key]; ok {
		return
	}
	s.aliases[key] = code
}

func wordSet(defaults []string, extra []string) map[string]bool {
	ret := make(map[string]bool, len(defaults)+len(extra))
	for _, words := range [][]string{defaults, extra} {
		for _, word := range words {
			if key := fold(word); key != "" {
				ret[key] = true
			}
		}
	}
	return ret
}
