package models

type Config struct {
	Debug          bool   `yaml:"debug" envconfig:"EXPLOSIG_DEBUG"`
	ServiceContact string `yaml:"serviceContact" envconfig:"EXPLOSIG_SERVICE_CONTACT"`
	SemVer         string `yaml:"semver" envconfig:"EXPLOSIG_SEMVER" default:"0.1.0"`

	Api struct {
		Url          string `yaml:"url" envconfig:"EXPLOSIG_API_URL"`
		Port         string `yaml:"port" envconfig:"EXPLOSIG_API_INTERNAL_PORT" default:"5000"`
		DataRoot     string `yaml:"dataRoot" envconfig:"EXPLOSIG_API_DATA_ROOT" default:"."`
		AuditEnabled bool   `yaml:"auditEnabled" envconfig:"EXPLOSIG_API_AUDIT_ENABLED" default:"true"`
		AuditAt      string `yaml:"auditAt" envconfig:"EXPLOSIG_API_AUDIT_AT" default:"04:00:00"`
	} `yaml:"api"`
}
