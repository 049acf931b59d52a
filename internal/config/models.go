package config

// Definition is a form described in a YAML file.
type Definition struct {
	Version int        `yaml:"version"`
	Title   string     `yaml:"title,omitempty"`
	Fields  []FieldDef `yaml:"fields"`
}

// FieldDef describes one field. Kind selects the field variant and Type the
// Go type its value is parsed into.
type FieldDef struct {
	Name    string      `yaml:"name"`
	Prompt  string      `yaml:"prompt"`
	Kind    string      `yaml:"kind,omitempty"` // text (default), optional, select, multiselect
	Type    string      `yaml:"type,omitempty"` // string (default), int, uint, float, bool, rune
	Rules   []RuleDef   `yaml:"rules,omitempty"`
	Options []OptionDef `yaml:"options,omitempty"`
	Limit   int         `yaml:"limit,omitempty"` // multiselect only, 0 = no limit
}

// RuleDef names a validation predicate. Arg is used by min_length and
// max_length.
type RuleDef struct {
	Rule    string `yaml:"rule"`
	Arg     int    `yaml:"arg,omitempty"`
	Message string `yaml:"message,omitempty"`
}

// OptionDef is one choice of a select field. Value is parsed into the
// field's Type; Label defaults to Value.
type OptionDef struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// Field kinds accepted in definitions.
const (
	KindText        = "text"
	KindOptional    = "optional"
	KindSelect      = "select"
	KindMultiSelect = "multiselect"
)

// Value types accepted in definitions.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeUint   = "uint"
	TypeFloat  = "float"
	TypeBool   = "bool"
	TypeRune   = "rune"
)

// CurrentVersion is the only definition version understood.
const CurrentVersion = 1

// kind returns the field kind, applying the default.
func (fd FieldDef) kind() string {
	if fd.Kind == "" {
		return KindText
	}
	return fd.Kind
}

// valueType returns the value type, applying the default.
func (fd FieldDef) valueType() string {
	if fd.Type == "" {
		return TypeString
	}
	return fd.Type
}

func (fd FieldDef) isChoice() bool {
	k := fd.kind()
	return k == KindSelect || k == KindMultiSelect
}

// label returns the option's label, defaulting to its value.
func (o OptionDef) label() string {
	if o.Label == "" {
		return o.Value
	}
	return o.Label
}

// ExampleDefinition returns the demo form as a definition, used to seed new
// definition files.
func ExampleDefinition() *Definition {
	return &Definition{
		Version: CurrentVersion,
		Title:   "Personal details",
		Fields: []FieldDef{
			{
				Name:   "name",
				Prompt: "Enter name:",
				Rules: []RuleDef{
					{Rule: "not_empty", Message: "Name cannot be empty"},
					{Rule: "valid_name", Message: "Name cannot contain numbers"},
				},
			},
			{
				Name:   "email",
				Prompt: "Enter email:",
				Rules: []RuleDef{
					{Rule: "not_empty", Message: "Email cannot be empty"},
					{Rule: "email", Message: "Invalid email format"},
				},
			},
			{
				Name:   "age",
				Prompt: "Enter age:",
				Type:   TypeUint,
				Rules:  []RuleDef{{Rule: "not_empty", Message: "Age cannot be empty"}},
			},
			{
				Name:   "custom",
				Prompt: "Enter custom value:",
				Rules: []RuleDef{
					{Rule: "not_empty", Message: "Custom value cannot be empty"},
					{Rule: "min_length", Arg: 6, Message: "Custom value must be longer than 5 characters"},
				},
			},
			{
				Name:   "height",
				Prompt: "Enter height:",
				Type:   TypeFloat,
				Rules:  []RuleDef{{Rule: "not_empty", Message: "Height cannot be empty"}},
			},
			{
				Name:   "is_student",
				Prompt: "Are you a student (true/false):",
				Type:   TypeBool,
				Rules:  []RuleDef{{Rule: "not_empty", Message: "This field cannot be empty"}},
			},
			{
				Name:   "initial",
				Prompt: "Enter your initial:",
				Type:   TypeRune,
				Rules:  []RuleDef{{Rule: "not_empty", Message: "Initial cannot be empty"}},
			},
			{Name: "width", Prompt: "Enter width (optional):", Kind: KindOptional, Type: TypeUint},
			{
				Name:   "gender",
				Prompt: "Select your gender:",
				Kind:   KindSelect,
				Options: []OptionDef{
					{Value: "M", Label: "Male"},
					{Value: "F", Label: "Female"},
					{Value: "O", Label: "Other"},
				},
			},
			{
				Name:   "hobbies",
				Prompt: "Select your hobbies:",
				Kind:   KindMultiSelect,
				Limit:  2,
				Options: []OptionDef{
					{Value: "reading", Label: "Reading"},
					{Value: "sports", Label: "Sports"},
					{Value: "music", Label: "Music"},
				},
			},
		},
	}
}
