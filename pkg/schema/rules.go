package schema

// builtinRules is the descriptor table for every rule code of the external
// engine that this toolkit knows how to validate. Shapes mirror the engine's
// documented parameter objects; rules without fields accept only booleans.
//
//nolint:gochecknoglobals // Read-only lookup table.
var builtinRules = []Rule{
	{
		ID: "MD001", Name: "heading-increment", Tags: []string{"headings"},
		Description: "Heading levels should only increment by one level at a time",
	},
	{
		ID: "MD003", Name: "heading-style", Tags: []string{"headings"},
		Description: "Heading style should be consistent",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"consistent", "atx", "atx_closed", "setext", "setext_with_atx", "setext_with_atx_closed"},
				Doc:  "Heading style to enforce"},
		}},
	},
	{
		ID: "MD004", Name: "ul-style", Tags: []string{"bullet", "ul"},
		Description: "Unordered list style should be consistent",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"consistent", "asterisk", "plus", "dash", "sublist"},
				Doc:  "List marker style to enforce"},
		}},
	},
	{
		ID: "MD005", Name: "list-indent", Tags: []string{"bullet", "ul", "indentation"},
		Description: "Inconsistent indentation for list items at the same level",
	},
	{
		ID: "MD007", Name: "ul-indent", Tags: []string{"bullet", "ul", "indentation"},
		Description: "Unordered list indentation",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "indent", Type: FieldInt, Doc: "Spaces per indentation level"},
			{Name: "start_indented", Type: FieldBool, Doc: "Whether the first level may be indented"},
		}},
	},
	{
		ID: "MD009", Name: "no-trailing-spaces", Tags: []string{"whitespace"},
		Description: "Trailing spaces",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "br_spaces", Type: FieldInt, Doc: "Spaces allowed for a line break"},
			{Name: "strict", Type: FieldBool, Doc: "Report even intentional line-break spaces"},
		}},
	},
	{
		ID: "MD010", Name: "no-hard-tabs", Tags: []string{"whitespace", "hard_tab"},
		Description: "Hard tabs",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "code_blocks", Type: FieldBool, Doc: "Check code blocks as well"},
		}},
	},
	{
		ID: "MD011", Name: "no-reversed-links", Tags: []string{"links"},
		Description: "Reversed link syntax",
	},
	{
		ID: "MD012", Name: "no-multiple-blanks", Tags: []string{"whitespace", "blank_lines"},
		Description: "Multiple consecutive blank lines",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "maximum", Type: FieldInt, Doc: "Maximum consecutive blank lines"},
		}},
	},
	{
		ID: "MD013", Name: "line-length", Tags: []string{"line_length"},
		Description: "Line length",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "line_length", Type: FieldInt, Doc: "Maximum line length"},
			{Name: "heading_line_length", Type: FieldInt, Doc: "Maximum heading line length"},
			{Name: "code_blocks", Type: FieldBool, Doc: "Check code blocks"},
			{Name: "tables", Type: FieldBool, Doc: "Check tables"},
			{Name: "headings", Type: FieldBool, Doc: "Check headings"},
		}},
	},
	{
		ID: "MD014", Name: "commands-show-output", Tags: []string{"code"},
		Description: "Dollar signs used before commands without showing output",
	},
	{
		ID: "MD018", Name: "no-missing-space-atx", Tags: []string{"headings", "atx", "spaces"},
		Description: "No space after hash on atx style heading",
	},
	{
		ID: "MD019", Name: "no-multiple-space-atx", Tags: []string{"headings", "atx", "spaces"},
		Description: "Multiple spaces after hash on atx style heading",
	},
	{
		ID: "MD020", Name: "no-missing-space-closed-atx", Tags: []string{"headings", "atx_closed", "spaces"},
		Description: "No space inside hashes on closed atx style heading",
	},
	{
		ID: "MD021", Name: "no-multiple-space-closed-atx", Tags: []string{"headings", "atx_closed", "spaces"},
		Description: "Multiple spaces inside hashes on closed atx style heading",
	},
	{
		ID: "MD022", Name: "blanks-around-headings", Tags: []string{"headings", "blank_lines"},
		Description: "Headings should be surrounded by blank lines",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "lines_above", Type: FieldInt, Doc: "Blank lines required above a heading"},
			{Name: "lines_below", Type: FieldInt, Doc: "Blank lines required below a heading"},
		}},
	},
	{
		ID: "MD023", Name: "heading-start-left", Tags: []string{"headings", "spaces"},
		Description: "Headings must start at the beginning of the line",
	},
	{
		ID: "MD024", Name: "no-duplicate-heading", Tags: []string{"headings"},
		Description: "Multiple headings with the same content",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "siblings_only", Type: FieldBool, Doc: "Only report duplicates among sibling headings"},
		}},
	},
	{
		ID: "MD025", Name: "single-title", Tags: []string{"headings"},
		Description: "Multiple top-level headings in the same document",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "level", Type: FieldInt, Doc: "Heading level treated as the title"},
			{Name: "front_matter_title", Type: FieldString, Doc: "Pattern matching a title in frontmatter"},
		}},
	},
	{
		ID: "MD026", Name: "no-trailing-punctuation", Tags: []string{"headings"},
		Description: "Trailing punctuation in heading",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "punctuation", Type: FieldString, Doc: "Punctuation characters to reject"},
		}},
	},
	{
		ID: "MD027", Name: "no-multiple-space-blockquote", Tags: []string{"blockquote", "whitespace", "indentation"},
		Description: "Multiple spaces after blockquote symbol",
	},
	{
		ID: "MD028", Name: "no-blanks-blockquote", Tags: []string{"blockquote", "whitespace"},
		Description: "Blank line inside blockquote",
	},
	{
		ID: "MD029", Name: "ol-prefix", Tags: []string{"ol"},
		Description: "Ordered list item prefix",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"one", "ordered", "one_or_ordered", "zero"},
				Doc:  "Numbering style for ordered lists"},
		}},
	},
	{
		ID: "MD030", Name: "list-marker-space", Tags: []string{"ol", "ul", "whitespace"},
		Description: "Spaces after list markers",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "ul_single", Type: FieldInt, Doc: "Spaces after marker for single-line unordered items"},
			{Name: "ol_single", Type: FieldInt, Doc: "Spaces after marker for single-line ordered items"},
			{Name: "ul_multi", Type: FieldInt, Doc: "Spaces after marker for multi-line unordered items"},
			{Name: "ol_multi", Type: FieldInt, Doc: "Spaces after marker for multi-line ordered items"},
		}},
	},
	{
		ID: "MD031", Name: "blanks-around-fences", Tags: []string{"code", "blank_lines"},
		Description: "Fenced code blocks should be surrounded by blank lines",
	},
	{
		ID: "MD032", Name: "blanks-around-lists", Tags: []string{"bullet", "ul", "ol", "blank_lines"},
		Description: "Lists should be surrounded by blank lines",
	},
	{
		ID: "MD033", Name: "no-inline-html", Tags: []string{"html"},
		Description: "Inline HTML",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "allowed_elements", Type: FieldStringSlice, Doc: "HTML element names allowed inline"},
		}},
	},
	{
		ID: "MD034", Name: "no-bare-urls", Tags: []string{"links", "url"},
		Description: "Bare URL used",
	},
	{
		ID: "MD035", Name: "hr-style", Tags: []string{"hr"},
		Description: "Horizontal rule style",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString, Doc: "Horizontal rule style to enforce"},
		}},
	},
	{
		ID: "MD036", Name: "no-emphasis-as-heading", Tags: []string{"headings", "emphasis"},
		Description: "Emphasis used instead of a heading",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "punctuation", Type: FieldString, Doc: "Punctuation disqualifying a line as a heading"},
		}},
	},
	{
		ID: "MD037", Name: "no-space-in-emphasis", Tags: []string{"emphasis", "whitespace"},
		Description: "Spaces inside emphasis markers",
	},
	{
		ID: "MD038", Name: "no-space-in-code", Tags: []string{"code", "whitespace"},
		Description: "Spaces inside code span elements",
	},
	{
		ID: "MD039", Name: "no-space-in-links", Tags: []string{"links", "whitespace"},
		Description: "Spaces inside link text",
	},
	{
		ID: "MD040", Name: "fenced-code-language", Tags: []string{"code", "language"},
		Description: "Fenced code blocks should have a language specified",
	},
	{
		ID: "MD041", Name: "first-line-heading", Tags: []string{"headings"},
		Description: "First line in a file should be a top-level heading",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "level", Type: FieldInt, Doc: "Heading level expected on the first line"},
			{Name: "front_matter_title", Type: FieldString, Doc: "Pattern matching a title in frontmatter"},
		}},
	},
	{
		ID: "MD042", Name: "no-empty-links", Tags: []string{"links"},
		Description: "No empty links",
	},
	{
		ID: "MD043", Name: "required-headings", Tags: []string{"headings"},
		Description: "Required heading structure",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "headings", Type: FieldStringSlice, Required: true, Doc: "Exact heading structure to require"},
			{Name: "match_case", Type: FieldBool, Doc: "Match heading case exactly"},
		}},
	},
	{
		ID: "MD044", Name: "proper-names", Tags: []string{"spelling"},
		Description: "Proper names should have the correct capitalization",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "names", Type: FieldStringSlice, Required: true, Doc: "Names to check for correct capitalization"},
			{Name: "code_blocks", Type: FieldBool, Doc: "Check code blocks as well"},
		}},
	},
	{
		ID: "MD045", Name: "no-alt-text", Tags: []string{"accessibility", "images"},
		Description: "Images should have alternate text",
	},
	{
		ID: "MD046", Name: "code-block-style", Tags: []string{"code"},
		Description: "Code block style",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"consistent", "fenced", "indented"},
				Doc:  "Code block style to enforce"},
		}},
	},
	{
		ID: "MD047", Name: "single-trailing-newline", Tags: []string{"whitespace", "blank_lines"},
		Description: "Files should end with a single newline character",
	},
	{
		ID: "MD048", Name: "code-fence-style", Tags: []string{"code"},
		Description: "Code fence style",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"consistent", "backtick", "tilde"},
				Doc:  "Fence character style to enforce"},
		}},
	},
	{
		ID: "MD049", Name: "emphasis-style", Tags: []string{"emphasis"},
		Description: "Emphasis style should be consistent",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"consistent", "asterisk", "underscore"},
				Doc:  "Emphasis marker style to enforce"},
		}},
	},
	{
		ID: "MD050", Name: "strong-style", Tags: []string{"emphasis"},
		Description: "Strong style should be consistent",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"consistent", "asterisk", "underscore"},
				Doc:  "Strong marker style to enforce"},
		}},
	},
	{
		ID: "MD051", Name: "link-fragments", Tags: []string{"links"},
		Description: "Link fragments should be valid",
	},
	{
		ID: "MD052", Name: "reference-links-images", Tags: []string{"links", "images"},
		Description: "Reference links and images should use a label that is defined",
	},
	{
		ID: "MD053", Name: "link-image-reference-definitions", Tags: []string{"links", "images"},
		Description: "Link and image reference definitions should be needed",
	},
	{
		ID: "MD054", Name: "link-image-style", Tags: []string{"links", "images"},
		Description: "Link and image style",
	},
	{
		ID: "MD055", Name: "table-pipe-style", Tags: []string{"table"},
		Description: "Table pipe style",
		Shape: Shape{Fields: []FieldSpec{
			{Name: "style", Type: FieldString,
				Enum: []string{"consistent", "leading_only", "trailing_only", "leading_and_trailing", "no_leading_or_trailing"},
				Doc:  "Table pipe style to enforce"},
		}},
	},
	{
		ID: "MD056", Name: "table-column-count", Tags: []string{"table"},
		Description: "Table column count",
	},
	{
		ID: "MD058", Name: "blanks-around-tables", Tags: []string{"table", "blank_lines"},
		Description: "Tables should be surrounded by blank lines",
	},
	{
		ID: "MD059", Name: "descriptive-link-text", Tags: []string{"accessibility", "links"},
		Description: "Link text should be descriptive",
	},
	{
		ID: "MD060", Name: "table-column-style", Tags: []string{"table"},
		Description: "Table column style",
	},
}

// legacyAliases are additional names some configurations use for rules that
// already have a primary name. Kept for compatibility with existing documents.
//
//nolint:gochecknoglobals // Read-only lookup table.
var legacyAliases = map[string]string{
	"single-h1":     "MD025",
	"first-line-h1": "MD041",
	"header-style":  "MD003",
}

func init() {
	for _, rule := range builtinRules {
		Default.Register(rule)
	}
	for alias, id := range legacyAliases {
		Default.RegisterAlias(alias, id)
	}
}
