package css

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses inline CSS declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseInline parses the content of a style attribute.
func (p *Parser) ParseInline(style string) Declarations {
	decls := make(Declarations)
	if strings.TrimSpace(style) == "" {
		return decls
	}

	parser := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil {
				if err.Error() != "EOF" {
					p.log.Debug("CSS parse error", zap.String("style", style), zap.Error(err))
				}
				return decls
			}
			// malformed declaration, the parser has skipped it

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			values := parser.Values()
			if len(values) > 0 {
				decls.set(name, p.parsePropertyValue(values))
			}

		case css.CustomPropertyGrammar:
			// custom properties (--var) are not used
			continue
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	tokens, important := stripImportant(tokens)

	var significant []css.Token
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken && t.TokenType != css.CommentToken {
			significant = append(significant, t)
		}
	}
	if len(significant) == 0 {
		return Value{Important: important}
	}

	val := Value{Raw: joinTokens(significant), Important: important}

	if len(significant) == 1 {
		t := significant[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			// Color value
			val.Keyword = string(t.Data)
		default:
			val.Keyword = val.Raw
		}
		return val
	}

	// Multi-value properties and functions keep the normalized raw text
	val.Keyword = val.Raw
	return val
}

func stripImportant(tokens []css.Token) ([]css.Token, bool) {
	end := len(tokens)
	for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	if end < 2 || !strings.EqualFold(string(tokens[end-1].Data), "important") {
		return tokens, false
	}
	bang := end - 2
	for bang > 0 && tokens[bang].TokenType == css.WhitespaceToken {
		bang--
	}
	if string(tokens[bang].Data) != "!" {
		return tokens, false
	}
	return tokens[:bang], true
}

// joinTokens renders tokens with single spaces between them, none inside
// function parentheses and none before commas.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			prev := tokens[i-1].TokenType
			switch {
			case t.TokenType == css.CommaToken, t.TokenType == css.RightParenthesisToken:
			case prev == css.FunctionToken, prev == css.LeftParenthesisToken:
			default:
				sb.WriteByte(' ')
			}
		}
		sb.Write(t.Data)
	}
	return sb.String()
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}
