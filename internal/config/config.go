package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"fineract-prequalification/internal/domain/policy"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs       int
	BureauCacheTTLSecs int

	LogLevel  string
	LogFormat string

	// comma separated loan product ids, empty keeps the default table
	PolicyRecurringProducts     string
	PolicyRecurringLongProducts string
	PolicyIncreaseBandProducts  string
	PolicyIncreaseCapProducts   string
	PolicyAgeMin                int
	PolicyAgeMax                int
	PolicyFemaleGenderLabel     string

	// "min,max" pairs, empty keeps the default range
	PolicyMembers                 string
	PolicyRecreditUrbanMembers    string
	PolicyRecreditRuralMembers    string
	PolicyAmount                  string
	PolicyRecreditRuralAmount     string
	PolicyRecreditUrbanAmount     string
	PolicyRequestedAmount         string
	PolicyRecreditRequestedAmount string
}

var rangeKeys = []string{
	"POLICY_MEMBERS",
	"POLICY_RECREDIT_URBAN_MEMBERS",
	"POLICY_RECREDIT_RURAL_MEMBERS",
	"POLICY_AMOUNT",
	"POLICY_RECREDIT_RURAL_AMOUNT",
	"POLICY_RECREDIT_URBAN_AMOUNT",
	"POLICY_REQUESTED_AMOUNT",
	"POLICY_RECREDIT_REQUESTED_AMOUNT",
}

func defaults(v *viper.Viper) {
	d := policy.Default()
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "fineract_default")
	v.SetDefault("MYSQL_USER", "mifos")
	v.SetDefault("MYSQL_PASS", "password")
	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_PASS", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)
	v.SetDefault("BUREAU_CACHE_TTL_SECONDS", 86400)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("POLICY_RECURRING_PRODUCTS", "")
	v.SetDefault("POLICY_RECURRING_LONG_PRODUCTS", "")
	v.SetDefault("POLICY_INCREASE_BAND_PRODUCTS", "")
	v.SetDefault("POLICY_INCREASE_CAP_PRODUCTS", "")
	v.SetDefault("POLICY_AGE_MIN", d.AgeMin)
	v.SetDefault("POLICY_AGE_MAX", d.AgeMax)
	v.SetDefault("POLICY_FEMALE_GENDER_LABEL", d.FemaleGenderLabel)
	for _, k := range rangeKeys {
		v.SetDefault(k, "")
	}
}

// Load reads the environment, after an optional .env in the working directory.
func Load() *Config {
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppPort:   v.GetString("APP_PORT"),
		MySQLHost: v.GetString("MYSQL_HOST"),
		MySQLPort: v.GetString("MYSQL_PORT"),
		MySQLDB:   v.GetString("MYSQL_DB"),
		MySQLUser: v.GetString("MYSQL_USER"),
		MySQLPass: v.GetString("MYSQL_PASS"),

		RedisAddr: v.GetString("REDIS_ADDR"),
		RedisPass: v.GetString("REDIS_PASS"),
		RedisDB:   v.GetInt("REDIS_DB"),

		IdempTTLSecs:       v.GetInt("IDEMPOTENCY_TTL_SECONDS"),
		BureauCacheTTLSecs: v.GetInt("BUREAU_CACHE_TTL_SECONDS"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),

		PolicyRecurringProducts:     v.GetString("POLICY_RECURRING_PRODUCTS"),
		PolicyRecurringLongProducts: v.GetString("POLICY_RECURRING_LONG_PRODUCTS"),
		PolicyIncreaseBandProducts:  v.GetString("POLICY_INCREASE_BAND_PRODUCTS"),
		PolicyIncreaseCapProducts:   v.GetString("POLICY_INCREASE_CAP_PRODUCTS"),
		PolicyAgeMin:                v.GetInt("POLICY_AGE_MIN"),
		PolicyAgeMax:                v.GetInt("POLICY_AGE_MAX"),
		PolicyFemaleGenderLabel:     v.GetString("POLICY_FEMALE_GENDER_LABEL"),

		PolicyMembers:                 v.GetString("POLICY_MEMBERS"),
		PolicyRecreditUrbanMembers:    v.GetString("POLICY_RECREDIT_URBAN_MEMBERS"),
		PolicyRecreditRuralMembers:    v.GetString("POLICY_RECREDIT_RURAL_MEMBERS"),
		PolicyAmount:                  v.GetString("POLICY_AMOUNT"),
		PolicyRecreditRuralAmount:     v.GetString("POLICY_RECREDIT_RURAL_AMOUNT"),
		PolicyRecreditUrbanAmount:     v.GetString("POLICY_RECREDIT_URBAN_AMOUNT"),
		PolicyRequestedAmount:         v.GetString("POLICY_REQUESTED_AMOUNT"),
		PolicyRecreditRequestedAmount: v.GetString("POLICY_RECREDIT_REQUESTED_AMOUNT"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.IdempTTLSecs <= 0 || c.BureauCacheTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS and BUREAU_CACHE_TTL_SECONDS must be positive")
	}
	if _, err := c.PolicyTable(); err != nil {
		return err
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) BureauCacheTTL() time.Duration {
	return time.Duration(c.BureauCacheTTLSecs) * time.Second
}

// PolicyTable is the default threshold table with the POLICY_* overrides applied.
func (c *Config) PolicyTable() (policy.Policy, error) {
	p := policy.Default()
	lists := []struct {
		key string
		raw string
		dst *[]int64
	}{
		{"POLICY_RECURRING_PRODUCTS", c.PolicyRecurringProducts, &p.RecurringProducts},
		{"POLICY_RECURRING_LONG_PRODUCTS", c.PolicyRecurringLongProducts, &p.RecurringLongProducts},
		{"POLICY_INCREASE_BAND_PRODUCTS", c.PolicyIncreaseBandProducts, &p.IncreaseBandProducts},
		{"POLICY_INCREASE_CAP_PRODUCTS", c.PolicyIncreaseCapProducts, &p.IncreaseCapProducts},
	}
	for _, l := range lists {
		if strings.TrimSpace(l.raw) == "" {
			continue
		}
		ids, err := parseIDs(l.raw)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %w", l.key, err)
		}
		*l.dst = ids
	}
	if c.PolicyAgeMin > 0 {
		p.AgeMin = c.PolicyAgeMin
	}
	if c.PolicyAgeMax > 0 {
		p.AgeMax = c.PolicyAgeMax
	}
	if p.AgeMin > p.AgeMax {
		return p, fmt.Errorf("POLICY_AGE_MIN %d exceeds POLICY_AGE_MAX %d", p.AgeMin, p.AgeMax)
	}
	if c.PolicyFemaleGenderLabel != "" {
		p.FemaleGenderLabel = c.PolicyFemaleGenderLabel
	}

	members := []struct {
		key string
		raw string
		dst *policy.MemberRange
	}{
		{"POLICY_MEMBERS", c.PolicyMembers, &p.Members},
		{"POLICY_RECREDIT_URBAN_MEMBERS", c.PolicyRecreditUrbanMembers, &p.RecreditUrbanMembers},
		{"POLICY_RECREDIT_RURAL_MEMBERS", c.PolicyRecreditRuralMembers, &p.RecreditRuralMembers},
	}
	for _, m := range members {
		if strings.TrimSpace(m.raw) == "" {
			continue
		}
		r, err := parseMemberRange(m.raw)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %w", m.key, err)
		}
		*m.dst = r
	}

	amounts := []struct {
		key string
		raw string
		dst *policy.AmountRange
	}{
		{"POLICY_AMOUNT", c.PolicyAmount, &p.Amount},
		{"POLICY_RECREDIT_RURAL_AMOUNT", c.PolicyRecreditRuralAmount, &p.RecreditRuralAmount},
		{"POLICY_RECREDIT_URBAN_AMOUNT", c.PolicyRecreditUrbanAmount, &p.RecreditUrbanAmount},
		{"POLICY_REQUESTED_AMOUNT", c.PolicyRequestedAmount, &p.RequestedAmount},
		{"POLICY_RECREDIT_REQUESTED_AMOUNT", c.PolicyRecreditRequestedAmount, &p.RecreditRequestedAmount},
	}
	for _, a := range amounts {
		if strings.TrimSpace(a.raw) == "" {
			continue
		}
		r, err := parseAmountRange(a.raw)
		if err != nil {
			return p, fmt.Errorf("invalid %s: %w", a.key, err)
		}
		*a.dst = r
	}
	return p, nil
}

func splitPair(raw string) (string, string, error) {
	lo, hi, ok := strings.Cut(raw, ",")
	if !ok {
		return "", "", fmt.Errorf("%q is not a min,max pair", raw)
	}
	return strings.TrimSpace(lo), strings.TrimSpace(hi), nil
}

func parseMemberRange(raw string) (policy.MemberRange, error) {
	lo, hi, err := splitPair(raw)
	if err != nil {
		return policy.MemberRange{}, err
	}
	minN, err1 := strconv.Atoi(lo)
	maxN, err2 := strconv.Atoi(hi)
	if err1 != nil || err2 != nil || minN < 0 || minN > maxN {
		return policy.MemberRange{}, fmt.Errorf("%q is not a valid member range", raw)
	}
	return policy.MemberRange{Min: minN, Max: maxN}, nil
}

func parseAmountRange(raw string) (policy.AmountRange, error) {
	lo, hi, err := splitPair(raw)
	if err != nil {
		return policy.AmountRange{}, err
	}
	minA, err1 := decimal.NewFromString(lo)
	maxA, err2 := decimal.NewFromString(hi)
	if err1 != nil || err2 != nil || minA.IsNegative() || minA.GreaterThan(maxA) {
		return policy.AmountRange{}, fmt.Errorf("%q is not a valid amount range", raw)
	}
	return policy.AmountRange{Min: minA, Max: maxA}, nil
}

func parseIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%q is not a product id", s)
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATE/DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
