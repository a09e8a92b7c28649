package names

import "testing"

var testCasesHumanize = map[string]struct {
	input    string
	expected string
}{
	"snake case":          {"product_id", "Product ID"},
	"camel case":          {"createdAt", "Created At"},
	"screaming snake":     {"CREATED_AT", "Created At"},
	"initialism mid name": {"ip_address", "IP Address"},
	"single word":         {"total", "Total"},
	"initialism leading":  {"sku_code", "SKU Code"},
	"already humanized":   {"Product ID", "Product ID"},
	"empty":               {"", ""},
}

func TestHumanize(t *testing.T) {
	for name, test := range testCasesHumanize {
		result := Humanize(test.input)
		if result != test.expected {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, result)
		}
	}
}

var testCasesTableDisplayName = map[string]struct {
	input    string
	expected string
}{
	"singular":       {"order", "Orders"},
	"already plural": {"ORDERS", "Orders"},
	"irregular":      {"person", "People"},
	"two words":      {"order_item", "Order Items"},
	"empty":          {"", ""},
}

func TestTableDisplayName(t *testing.T) {
	for name, test := range testCasesTableDisplayName {
		result := TableDisplayName(test.input)
		if result != test.expected {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, result)
		}
	}
}

var testCasesStripID = map[string]struct {
	input    string
	expected string
}{
	"fk name":     {"Product ID", "Product"},
	"no suffix":   {"Total", "Total"},
	"bare id":     {"ID", "ID"},
	"mid name id": {"ID Card Number", "ID Card Number"},
}

func TestStripID(t *testing.T) {
	for name, test := range testCasesStripID {
		result := StripID(test.input)
		if result != test.expected {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, result)
		}
	}
}

var testCasesCountLabel = map[string]struct {
	count    int
	word     string
	expected string
}{
	"singular": {1, "column", "1 column"},
	"plural":   {3, "column", "3 columns"},
	"zero":     {0, "column", "0 columns"},
}

func TestCountLabel(t *testing.T) {
	for name, test := range testCasesCountLabel {
		result := CountLabel(test.count, test.word)
		if result != test.expected {
			t.Errorf("Test: '%s' FAILED : \nexpected:\n %v \ngot:\n %v\n", name, test.expected, result)
		}
	}
}
