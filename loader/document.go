package loader

// document is the uap-core YAML rule shape, decoded verbatim before
// conversion to match records. Field names mirror the on-disk keys exactly;
// every field but regex is optional, matching the corpus convention of
// simply omitting a replacement key rather than supplying an empty string.
type document struct {
	UserAgentParsers []userAgentRule `yaml:"user_agent_parsers"`
	OSParsers        []osRule        `yaml:"os_parsers"`
	DeviceParsers    []deviceRule    `yaml:"device_parsers"`
}

type userAgentRule struct {
	Regex             string `yaml:"regex"`
	FamilyReplacement string `yaml:"family_replacement"`
	V1Replacement     string `yaml:"v1_replacement"`
	V2Replacement     string `yaml:"v2_replacement"`
	V3Replacement     string `yaml:"v3_replacement"`
}

type osRule struct {
	Regex           string `yaml:"regex"`
	OSReplacement   string `yaml:"os_replacement"`
	OSV1Replacement string `yaml:"os_v1_replacement"`
	OSV2Replacement string `yaml:"os_v2_replacement"`
	OSV3Replacement string `yaml:"os_v3_replacement"`
	OSV4Replacement string `yaml:"os_v4_replacement"`
}

type deviceRule struct {
	Regex         string `yaml:"regex"`
	RegexFlag     string `yaml:"regex_flag"`
	DeviceReplace string `yaml:"device_replacement"`
	BrandReplace  string `yaml:"brand_replacement"`
	ModelReplace  string `yaml:"model_replacement"`
}
