package tripn

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// XSD datatype IRIs a literal node's DatatypeURI may carry. The boolean,
// integer, decimal and double variants are also reachable as unquoted
// literal forms straight from the grammar (tryReadBooleanLiteral,
// readNumericLiteral); the others only ever arrive via an explicit
// "^^<iri>" suffix.
const (
	XSDString  = "http://www.w3.org/2001/XMLSchema#string"
	XSDBoolean = xsdBooleanURI
	XSDDecimal = xsdDecimalURI
	XSDInteger = xsdIntegerURI
	XSDFloat   = "http://www.w3.org/2001/XMLSchema#float"
	XSDDouble  = xsdDoubleURI
	XSDAnyURI  = "http://www.w3.org/2001/XMLSchema#anyURI"
)

// typeMismatch reports a Node whose DatatypeURI does not match the XSD
// type an As* accessor was asked to extract.
func (n Node) typeMismatch(want string) error {
	return errors.Errorf("tripn: node datatype %q is not %s", n.DatatypeURI, want)
}

// AsString returns a plain or xsd:string literal's lexical value.
func (n Node) AsString() (string, error) {
	if n.Type != NodeLiteral || (len(n.DatatypeURI) > 0 && string(n.DatatypeURI) != XSDString) {
		return "", n.typeMismatch(XSDString)
	}
	return string(n.Value), nil
}

// AsBool parses an xsd:boolean literal. Both the canonical "true"/"false"
// spellings and the lexical "1"/"0" alternatives permitted by the XSD
// datatype are accepted.
func (n Node) AsBool() (bool, error) {
	if string(n.DatatypeURI) != XSDBoolean {
		return false, n.typeMismatch(XSDBoolean)
	}
	switch string(n.Value) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, errors.Errorf("tripn: %q is not a valid xsd:boolean lexical form", n.Value)
	}
}

// AsInteger parses an xsd:integer literal as an arbitrary-precision integer.
func (n Node) AsInteger() (*big.Int, error) {
	if string(n.DatatypeURI) != XSDInteger {
		return nil, n.typeMismatch(XSDInteger)
	}
	v, ok := new(big.Int).SetString(string(n.Value), 10)
	if !ok {
		return nil, errors.Errorf("tripn: %q is not a valid xsd:integer lexical form", n.Value)
	}
	return v, nil
}

// AsDecimal parses an xsd:decimal literal as an arbitrary-precision float.
func (n Node) AsDecimal() (*big.Float, error) {
	if string(n.DatatypeURI) != XSDDecimal {
		return nil, n.typeMismatch(XSDDecimal)
	}
	v, ok := new(big.Float).SetString(string(n.Value))
	if !ok {
		return nil, errors.Errorf("tripn: %q is not a valid xsd:decimal lexical form", n.Value)
	}
	return v, nil
}

// AsFloat32 parses an xsd:float literal.
func (n Node) AsFloat32() (float32, error) {
	if string(n.DatatypeURI) != XSDFloat {
		return 0, n.typeMismatch(XSDFloat)
	}
	f, err := strconv.ParseFloat(string(n.Value), 32)
	if err != nil {
		return 0, errors.Wrapf(err, "tripn: invalid xsd:float lexical form %q", n.Value)
	}
	return float32(f), nil
}

// AsFloat64 parses an xsd:double literal.
func (n Node) AsFloat64() (float64, error) {
	if string(n.DatatypeURI) != XSDDouble {
		return 0, n.typeMismatch(XSDDouble)
	}
	f, err := strconv.ParseFloat(string(n.Value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "tripn: invalid xsd:double lexical form %q", n.Value)
	}
	return f, nil
}
