package export

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"debt-payoff/domain"
)

// DefaultShareBase is used when no base URL is configured.
const DefaultShareBase = "http://localhost:8080/"

// Share link parameter names. In the indexed form each is prefixed with "debt<i>.".
const (
	paramName    = "name"
	paramBalance = "bal"
	paramAPR     = "apr"
	paramMin     = "min"
)

// ShareLink encodes debts into base's query string as
// debt0.name=..&debt0.bal=..&debt0.apr=..&debt0.min=..&debt1.name=..
// Any query already on base is replaced.
func ShareLink(base string, debts domain.DebtList) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", &domain.InvalidInputError{Field: "base", Value: base, Reason: "not a valid URL"}
	}

	q := url.Values{}
	for i, d := range debts {
		prefix := fmt.Sprintf("debt%d.", i)
		q.Set(prefix+paramName, d.Name)
		q.Set(prefix+paramBalance, formatNumber(d.Balance))
		q.Set(prefix+paramAPR, formatNumber(d.APR))
		q.Set(prefix+paramMin, formatNumber(d.MinPayment))
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// ParseShareLink decodes a link made by ShareLink. It also reads the older flat
// form (name=..&bal=..&apr=..&min=.. repeated per debt), pairing values by position.
func ParseShareLink(link string) (domain.DebtList, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, &domain.InvalidInputError{Field: "link", Value: link, Reason: "not a valid URL"}
	}
	q := u.Query()

	if _, flat := q[paramName]; flat {
		return parseFlat(q)
	}
	return parseIndexed(q)
}

func parseIndexed(q url.Values) (domain.DebtList, error) {
	fields := map[int]map[string]string{}
	for key, values := range q {
		rest, ok := strings.CutPrefix(key, "debt")
		if !ok {
			continue
		}
		idx, field, ok := strings.Cut(rest, ".")
		if !ok {
			continue
		}
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 {
			return nil, &domain.InvalidInputError{Field: key, Value: idx, Reason: "bad debt index"}
		}
		if fields[i] == nil {
			fields[i] = map[string]string{}
		}
		fields[i][field] = values[0]
	}

	debts := make(domain.DebtList, len(fields))
	for i := range debts {
		f, ok := fields[i]
		if !ok {
			return nil, &domain.InvalidInputError{Field: fmt.Sprintf("debt%d", i), Value: nil, Reason: "missing from link"}
		}
		d, err := decodeDebt(fmt.Sprintf("debt%d.", i), f[paramName], f[paramBalance], f[paramAPR], f[paramMin])
		if err != nil {
			return nil, err
		}
		debts[i] = d
	}
	return debts, nil
}

func parseFlat(q url.Values) (domain.DebtList, error) {
	names := q[paramName]
	n := len(names)
	if len(q[paramBalance]) != n || len(q[paramAPR]) != n || len(q[paramMin]) != n {
		return nil, &domain.InvalidInputError{Field: "link", Value: q.Encode(), Reason: "debt fields do not line up"}
	}

	debts := make(domain.DebtList, n)
	for i := range debts {
		d, err := decodeDebt("", names[i], q[paramBalance][i], q[paramAPR][i], q[paramMin][i])
		if err != nil {
			return nil, err
		}
		debts[i] = d
	}
	return debts, nil
}

func decodeDebt(prefix, name, bal, apr, minPayment string) (domain.Debt, error) {
	d := domain.Debt{Name: name}
	for _, f := range []struct {
		param string
		raw   string
		dst   *float64
	}{
		{paramBalance, bal, &d.Balance},
		{paramAPR, apr, &d.APR},
		{paramMin, minPayment, &d.MinPayment},
	} {
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return domain.Debt{}, &domain.InvalidInputError{Field: prefix + f.param, Value: f.raw, Reason: "must be a number"}
		}
		*f.dst = v
	}
	return d, nil
}
