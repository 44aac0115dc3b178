package uci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/engineroom/core"
)

// Parser turns UCI engine output lines into typed updates. It is stateless
// and safe for concurrent use.
type Parser struct{}

// NewParser creates a UCI parser.
func NewParser() *Parser { return &Parser{} }

// ParseLine parses one line of engine output. Blank lines yield a nil
// update; unrecognized or malformed lines yield an error wrapping
// core.ErrParseLine.
func (p *Parser) ParseLine(line string) (core.Update, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	switch fields[0] {
	case "uciok":
		return core.ReadyStateChanged{State: core.Initialized}, nil

	case "readyok":
		return core.ReadyStateChanged{State: core.Ready}, nil

	case "id":
		return parseID(fields)

	case "bestmove":
		return parseBestMove(fields)

	case "option":
		return parseOption(fields)

	case "info":
		return parseInfo(line, fields)

	case "copyprotection":
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: copyprotection without status", core.ErrParseLine)
		}
		status := fields[1]
		return core.InfoUpdate{CopyProtection: &status}, nil

	case "registration":
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: registration without status", core.ErrParseLine)
		}
		return core.LifecycleEvent{Kind: core.LifecycleRegistration, Status: fields[1]}, nil

	default:
		return nil, fmt.Errorf("%w: %q", core.ErrParseLine, line)
	}
}

func parseID(fields []string) (core.Update, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: incomplete id line", core.ErrParseLine)
	}
	value := strings.Join(fields[2:], " ")
	switch fields[1] {
	case "name":
		return core.InfoUpdate{Name: &value}, nil
	case "author":
		return core.InfoUpdate{Author: &value}, nil
	default:
		return nil, fmt.Errorf("%w: unknown id field %q", core.ErrParseLine, fields[1])
	}
}

func parseBestMove(fields []string) (core.Update, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: bestmove without a move", core.ErrParseLine)
	}
	bm := core.BestMove{Move: fields[1]}
	if len(fields) >= 4 && fields[2] == "ponder" {
		ponder := fields[3]
		bm.Ponder = &ponder
	}
	return bm, nil
}

// optionKeywords are the parameter markers of an "option" line. Everything
// between two markers belongs to the preceding one, which lets multi-word
// option names and defaults parse correctly.
var optionKeywords = map[string]bool{
	"name": true, "type": true, "default": true, "min": true, "max": true, "var": true,
}

func parseOption(fields []string) (core.Update, error) {
	var (
		name    string
		def     core.OptionDefinition
		typeSet bool
	)

	i := 1
	for i < len(fields) {
		keyword := fields[i]
		if !optionKeywords[keyword] {
			return nil, fmt.Errorf("%w: unexpected token %q in option line", core.ErrParseLine, keyword)
		}

		// Collect the value tokens belonging to this keyword.
		j := i + 1
		for j < len(fields) && !optionKeywords[fields[j]] {
			j++
		}
		value := strings.Join(fields[i+1:j], " ")

		switch keyword {
		case "name":
			name = value
		case "type":
			t, err := parseOptionType(value)
			if err != nil {
				return nil, err
			}
			def.Type = t
			typeSet = true
		case "default":
			def.Default = value
		case "min":
			n, err := parseInt(value, "min")
			if err != nil {
				return nil, err
			}
			def.Min = &n
		case "max":
			n, err := parseInt(value, "max")
			if err != nil {
				return nil, err
			}
			def.Max = &n
		case "var":
			def.Vars = append(def.Vars, value)
		}

		i = j
	}

	if name == "" || !typeSet {
		return nil, fmt.Errorf("%w: option line missing name or type", core.ErrParseLine)
	}

	return core.CapabilityAdded{Name: name, Definition: def}, nil
}

func parseOptionType(value string) (core.OptionType, error) {
	switch value {
	case "check":
		return core.OptionTypeCheck, nil
	case "spin":
		return core.OptionTypeSpin, nil
	case "combo":
		return core.OptionTypeCombo, nil
	case "button":
		return core.OptionTypeButton, nil
	case "string":
		return core.OptionTypeString, nil
	default:
		return 0, fmt.Errorf("%w: unknown option type %q", core.ErrParseLine, value)
	}
}

// infoKeywords are the parameter markers of an "info" line.
var infoKeywords = map[string]bool{
	"depth": true, "seldepth": true, "time": true, "nodes": true, "pv": true,
	"multipv": true, "score": true, "currmove": true, "currmovenumber": true,
	"hashfull": true, "nps": true, "tbhits": true, "sbhits": true,
	"cpuload": true, "string": true, "refutation": true, "currline": true,
}

func parseInfo(line string, fields []string) (core.Update, error) {
	var data core.AnalysisData

	i := 1
	for i < len(fields) {
		keyword := fields[i]
		switch keyword {
		case "depth":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.Depth = &n
			i += 2
		case "seldepth":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.SelDepth = &n
			i += 2
		case "time":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.TimeMs = &n
			i += 2
		case "nodes":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.Nodes = &n
			i += 2
		case "nps":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.NPS = &n
			i += 2
		case "multipv":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.MultiPV = &n
			i += 2
		case "currmovenumber":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.CurrMoveNumber = &n
			i += 2
		case "hashfull":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.HashFull = &n
			i += 2
		case "tbhits":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.TBHits = &n
			i += 2
		case "sbhits":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.SBHits = &n
			i += 2
		case "cpuload":
			n, err := nextInt(fields, i, keyword)
			if err != nil {
				return nil, err
			}
			data.CPULoad = &n
			i += 2
		case "currmove":
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("%w: currmove without a move", core.ErrParseLine)
			}
			move := fields[i+1]
			data.CurrMove = &move
			i += 2
		case "score":
			score, consumed, err := parseScore(fields, i+1)
			if err != nil {
				return nil, err
			}
			data.Score = score
			i += 1 + consumed
		case "pv":
			moves, consumed := collectMoves(fields, i+1)
			data.PV = moves
			i += 1 + consumed
		case "refutation":
			moves, consumed := collectMoves(fields, i+1)
			data.Refutation = moves
			i += 1 + consumed
		case "currline":
			moves, consumed := collectMoves(fields, i+1)
			// A leading integer is the CPU number, not a move.
			if len(moves) > 0 {
				if _, err := strconv.Atoi(moves[0]); err == nil {
					moves = moves[1:]
				}
			}
			data.CurrLine = moves
			i += 1 + consumed
		case "string":
			// Everything after "string" is free-form text, verbatim.
			idx := strings.Index(line, " string ")
			if idx >= 0 {
				text := line[idx+len(" string "):]
				data.Text = &text
			} else {
				text := ""
				data.Text = &text
			}
			i = len(fields)
		default:
			return nil, fmt.Errorf("%w: unknown info token %q", core.ErrParseLine, keyword)
		}
	}

	return core.AnalysisUpdate{Data: data}, nil
}

// parseScore parses "cp N [lowerbound|upperbound]" or "mate N" starting at
// fields[start]; it returns the token count it consumed.
func parseScore(fields []string, start int) (*core.Score, int, error) {
	if start+1 >= len(fields) {
		return nil, 0, fmt.Errorf("%w: incomplete score", core.ErrParseLine)
	}

	n, err := parseInt(fields[start+1], "score")
	if err != nil {
		return nil, 0, err
	}

	score := &core.Score{}
	consumed := 2

	switch fields[start] {
	case "cp":
		score.CP = &n
	case "mate":
		score.Mate = &n
	default:
		return nil, 0, fmt.Errorf("%w: unknown score kind %q", core.ErrParseLine, fields[start])
	}

	if start+2 < len(fields) {
		switch fields[start+2] {
		case "lowerbound":
			score.Bound = core.ScoreLowerBound
			consumed++
		case "upperbound":
			score.Bound = core.ScoreUpperBound
			consumed++
		}
	}

	return score, consumed, nil
}

// collectMoves gathers tokens until the next info keyword.
func collectMoves(fields []string, start int) ([]string, int) {
	var moves []string
	i := start
	for i < len(fields) && !infoKeywords[fields[i]] {
		moves = append(moves, fields[i])
		i++
	}
	return moves, i - start
}

func nextInt(fields []string, i int, keyword string) (int, error) {
	if i+1 >= len(fields) {
		return 0, fmt.Errorf("%w: %s without a value", core.ErrParseLine, keyword)
	}
	return parseInt(fields[i+1], keyword)
}

func parseInt(value, keyword string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s value %q is not a number", core.ErrParseLine, keyword, value)
	}
	return n, nil
}
