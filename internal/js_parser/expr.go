package js_parser

import (
	"github.com/1ntEgr8/ecmafront/internal/js_ast"
	"github.com/1ntEgr8/ecmafront/internal/js_lexer"
	"github.com/1ntEgr8/ecmafront/internal/logger"
)

// tokenToBinOp maps an infix/assignment punctuator token to its
// js_ast.OpCode. "in" is looked up separately since its availability
// depends on GrammarParams.AllowIn.
var tokenToBinOp = map[js_lexer.T]js_ast.OpCode{
	js_lexer.TPlus:                                  js_ast.BinOpAdd,
	js_lexer.TMinus:                                 js_ast.BinOpSub,
	js_lexer.TAsterisk:                               js_ast.BinOpMul,
	js_lexer.TSlash:                                  js_ast.BinOpDiv,
	js_lexer.TPercent:                                js_ast.BinOpRem,
	js_lexer.TAsteriskAsterisk:                        js_ast.BinOpPow,
	js_lexer.TLessThan:                               js_ast.BinOpLt,
	js_lexer.TLessThanEquals:                          js_ast.BinOpLe,
	js_lexer.TGreaterThan:                            js_ast.BinOpGt,
	js_lexer.TGreaterThanEquals:                       js_ast.BinOpGe,
	js_lexer.TInstanceof:                             js_ast.BinOpInstanceof,
	js_lexer.TLessThanLessThan:                        js_ast.BinOpShl,
	js_lexer.TGreaterThanGreaterThan:                  js_ast.BinOpShr,
	js_lexer.TGreaterThanGreaterThanGreaterThan:        js_ast.BinOpUShr,
	js_lexer.TEqualsEquals:                           js_ast.BinOpLooseEq,
	js_lexer.TExclamationEquals:                       js_ast.BinOpLooseNe,
	js_lexer.TEqualsEqualsEquals:                      js_ast.BinOpStrictEq,
	js_lexer.TExclamationEqualsEquals:                 js_ast.BinOpStrictNe,
	js_lexer.TQuestionQuestion:                        js_ast.BinOpNullishCoalescing,
	js_lexer.TBarBar:                                 js_ast.BinOpLogicalOr,
	js_lexer.TAmpersandAmpersand:                      js_ast.BinOpLogicalAnd,
	js_lexer.TBar:                                    js_ast.BinOpBitwiseOr,
	js_lexer.TAmpersand:                               js_ast.BinOpBitwiseAnd,
	js_lexer.TCaret:                                  js_ast.BinOpBitwiseXor,
	js_lexer.TComma:                                  js_ast.BinOpComma,
	js_lexer.TEquals:                                 js_ast.BinOpAssign,
	js_lexer.TPlusEquals:                              js_ast.BinOpAddAssign,
	js_lexer.TMinusEquals:                             js_ast.BinOpSubAssign,
	js_lexer.TAsteriskEquals:                          js_ast.BinOpMulAssign,
	js_lexer.TSlashEquals:                             js_ast.BinOpDivAssign,
	js_lexer.TPercentEquals:                           js_ast.BinOpRemAssign,
	js_lexer.TAsteriskAsteriskEquals:                   js_ast.BinOpPowAssign,
	js_lexer.TLessThanLessThanEquals:                   js_ast.BinOpShlAssign,
	js_lexer.TGreaterThanGreaterThanEquals:             js_ast.BinOpShrAssign,
	js_lexer.TGreaterThanGreaterThanGreaterThanEquals:  js_ast.BinOpUShrAssign,
	js_lexer.TBarEquals:                               js_ast.BinOpBitwiseOrAssign,
	js_lexer.TAmpersandEquals:                          js_ast.BinOpBitwiseAndAssign,
	js_lexer.TCaretEquals:                             js_ast.BinOpBitwiseXorAssign,
	js_lexer.TQuestionQuestionEquals:                   js_ast.BinOpNullishCoalescingAssign,
	js_lexer.TBarBarEquals:                            js_ast.BinOpLogicalOrAssign,
	js_lexer.TAmpersandAmpersandEquals:                 js_ast.BinOpLogicalAndAssign,
}

// parseExpr is the Pratt/precedence-climbing entry point: parsePrefix
// finds the left operand (a unary operator or a PrimaryExpression),
// then parseSuffix absorbs every operator that binds at least as
// tightly as level.
func (p *parser) parseExpr(g GrammarParams, level js_ast.L) js_ast.Expr {
	left := p.parsePrefix(g, level)
	return p.parseSuffix(g, level, left)
}

func (p *parser) parsePrefix(g GrammarParams, level js_ast.L) js_ast.Expr {
	cur := p.cursor.Cur()
	loc := cur.loc

	switch cur.kind {
	case js_lexer.TPlus:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpPos, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TMinus:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpNeg, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TTilde:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpCpl, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TExclamation:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpNot, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TVoid:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpVoid, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TTypeof:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpTypeof, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TDelete:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpDelete, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TPlusPlus:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpPreInc, Value: p.parseExpr(g, js_ast.LPrefix)}}
	case js_lexer.TMinusMinus:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EUnary{Op: js_ast.UnOpPreDec, Value: p.parseExpr(g, js_ast.LPrefix)}}

	case js_lexer.TIdentifier:
		// "yield" and "await" are contextual: the lexer always hands
		// them over as plain identifiers, and only here, gated on the
		// grammar parameters a generator/async function body sets, do
		// they become operators. Outside that context they fall
		// through to parsePrimary like any other identifier.
		if cur.identifier == "yield" && g.AllowYield {
			p.cursor.Advance()
			isStar := false
			if _, ok := p.cursor.NextIf(js_lexer.TAsterisk); ok {
				isStar = true
			}
			var value js_ast.Expr
			next := p.cursor.Cur()
			if !next.hasNewlineBefore && !isYieldArgumentBoundary(next.kind) {
				value = p.parseExpr(g, js_ast.LYield)
			}
			return js_ast.Expr{Loc: loc, Data: &js_ast.EYield{ValueOrNil: value, IsStar: isStar}}
		}
		if cur.identifier == "await" && g.AllowAwait {
			p.cursor.Advance()
			return js_ast.Expr{Loc: loc, Data: &js_ast.EAwait{Value: p.parseExpr(g, js_ast.LPrefix)}}
		}
		return p.parsePrimary(g)

	default:
		return p.parsePrimary(g)
	}
}

func isYieldArgumentBoundary(t js_lexer.T) bool {
	switch t {
	case js_lexer.TSemicolon, js_lexer.TCloseParen, js_lexer.TCloseBracket, js_lexer.TCloseBrace,
		js_lexer.TComma, js_lexer.TColon, js_lexer.TEndOfFile:
		return true
	}
	return false
}

func (p *parser) parseSuffix(g GrammarParams, level js_ast.L, left js_ast.Expr) js_ast.Expr {
	for {
		cur := p.cursor.Cur()

		switch cur.kind {
		case js_lexer.TDot:
			p.cursor.Advance()
			left = p.finishDot(left, false)
			continue

		case js_lexer.TQuestionDot:
			p.cursor.Advance()
			switch p.cursor.Cur().kind {
			case js_lexer.TOpenParen:
				left = p.parseCallArgs(g, left, true)
			case js_lexer.TOpenBracket:
				left = p.finishIndex(g, left, true)
			default:
				left = p.finishDot(left, true)
			}
			continue

		case js_lexer.TOpenBracket:
			left = p.finishIndex(g, left, false)
			continue

		case js_lexer.TOpenParen:
			left = p.parseCallArgs(g, left, false)
			continue

		case js_lexer.TPlusPlus:
			if cur.hasNewlineBefore {
				return left
			}
			p.cursor.Advance()
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EUnary{Op: js_ast.UnOpPostInc, Value: left}}
			continue

		case js_lexer.TMinusMinus:
			if cur.hasNewlineBefore {
				return left
			}
			p.cursor.Advance()
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EUnary{Op: js_ast.UnOpPostDec, Value: left}}
			continue
		}

		if cur.kind == js_lexer.TQuestion && js_ast.LConditional >= level {
			p.cursor.Advance()
			yes := p.parseExpr(g.WithIn(true), js_ast.LAssign)
			p.cursor.Expect(js_lexer.TColon, "conditional expression")
			no := p.parseExpr(g, js_ast.LAssign)
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EConditional{Test: left, Yes: yes, No: no}}
			continue
		}

		if cur.kind == js_lexer.TIn {
			if !g.AllowIn {
				return left
			}
			if js_ast.OpTable[js_ast.BinOpIn].Level < level {
				return left
			}
			p.cursor.Advance()
			right := p.parseExpr(g, js_ast.OpTable[js_ast.BinOpIn].Level+1)
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EBinary{Op: js_ast.BinOpIn, Left: left, Right: right}}
			continue
		}

		if op, ok := tokenToBinOp[cur.kind]; ok {
			entry := js_ast.OpTable[op]
			if entry.Level < level {
				return left
			}
			p.cursor.Advance()
			nextLevel := entry.Level
			if !op.IsRightAssociative() {
				nextLevel = entry.Level + 1
			}
			right := p.parseExpr(g, nextLevel)
			left = js_ast.Expr{Loc: left.Loc, Data: &js_ast.EBinary{Op: op, Left: left, Right: right}}
			continue
		}

		return left
	}
}

func (p *parser) finishDot(left js_ast.Expr, isOptionalChain bool) js_ast.Expr {
	nameTok := p.cursor.Cur()
	name, ok := identifierNameText(nameTok)
	if !ok {
		p.fail(newExpected(p.source, []string{"identifier"}, foundDesc(nameTok), nameTok.loc, "member expression"))
	}
	p.cursor.Advance()
	return js_ast.Expr{Loc: left.Loc, Data: &js_ast.EDot{Target: left, Name: name, NameLoc: nameTok.loc, IsOptionalChain: isOptionalChain}}
}

func (p *parser) finishIndex(g GrammarParams, left js_ast.Expr, isOptionalChain bool) js_ast.Expr {
	p.cursor.Advance() // '['
	idx := p.parseExpr(g.WithIn(true), js_ast.LLowest)
	p.cursor.Expect(js_lexer.TCloseBracket, "member expression")
	return js_ast.Expr{Loc: left.Loc, Data: &js_ast.EIndex{Target: left, Index: idx, IsOptionalChain: isOptionalChain}}
}

func (p *parser) parseCallArgs(g GrammarParams, target js_ast.Expr, isOptionalChain bool) js_ast.Expr {
	p.cursor.Advance() // '('
	var args []js_ast.Expr
	for p.cursor.Cur().kind != js_lexer.TCloseParen {
		if _, ok := p.cursor.NextIf(js_lexer.TDotDotDot); ok {
			value := p.parseExpr(g.WithIn(true), js_ast.LAssign)
			args = append(args, js_ast.Expr{Loc: value.Loc, Data: &js_ast.ESpread{Value: value}})
		} else {
			args = append(args, p.parseExpr(g.WithIn(true), js_ast.LAssign))
		}
		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	p.cursor.Expect(js_lexer.TCloseParen, "call expression")
	return js_ast.Expr{Loc: target.Loc, Data: &js_ast.ECall{Target: target, Args: args, IsOptionalChain: isOptionalChain}}
}

func (p *parser) parsePrimary(g GrammarParams) js_ast.Expr {
	cur := p.cursor.Cur()
	loc := cur.loc

	switch cur.kind {
	case js_lexer.TThis:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EThis{}}

	case js_lexer.TSuper:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ESuper{}}

	case js_lexer.TNull:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ENull{}}

	case js_lexer.TTrue:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EBoolean{Value: true}}

	case js_lexer.TFalse:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EBoolean{Value: false}}

	case js_lexer.TNumericLiteral:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ENumber{Value: cur.number}}

	case js_lexer.TStringLiteral:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.EString{Value: cur.stringLiteral}}

	case js_lexer.TNoSubstitutionTemplateLiteral:
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ETemplate{Head: cur.stringLiteral, HeadLoc: loc}}

	case js_lexer.TSlash, js_lexer.TSlashEquals:
		p.cursor.RescanCurrentAsRegExp()
		cur = p.cursor.Cur()
		p.cursor.Advance()
		return js_ast.Expr{Loc: loc, Data: &js_ast.ERegExp{Body: cur.identifier, Flags: cur.regexFlags}}

	case js_lexer.TFunction:
		return p.parseFunctionExpr(g, loc)

	case js_lexer.TClass:
		return p.parseClassExpr(g, loc)

	case js_lexer.TOpenBracket:
		return p.parseArrayLiteral(g, loc)

	case js_lexer.TOpenBrace:
		p.cursor.Advance()
		return p.parseObjectLiteral(g, loc)

	case js_lexer.TOpenParen:
		return p.parseParenExprOrArrow(g, loc)

	case js_lexer.TIdentifier:
		if cur.identifier == "async" {
			if expr, ok := p.tryParseAsyncPrimary(g, loc); ok {
				return expr
			}
		}
		if p.cursor.Peek(1).kind == js_lexer.TEqualsGreaterThan && !p.cursor.Peek(1).hasNewlineBefore {
			ref := p.interner.Intern(cur.identifier)
			p.cursor.Advance()
			p.cursor.Advance() // '=>'
			arg := js_ast.Arg{Binding: js_ast.Binding{Loc: loc, Data: &js_ast.BIdentifier{Ref: ref}}}
			return p.parseArrowBody(g, loc, []js_ast.Arg{arg}, false)
		}
		p.cursor.Advance()
		ref := p.interner.Intern(cur.identifier)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Ref: ref}}

	default:
		if cur.kind == js_lexer.TEndOfFile {
			p.fail(newAbruptEnd(p.source, loc))
		}
		p.fail(newGeneral(p.source, "unexpected "+foundDesc(cur)+" in expression", loc))
		panic("unreachable")
	}
}

func (p *parser) tryParseAsyncPrimary(g GrammarParams, loc logger.Loc) (js_ast.Expr, bool) {
	next := p.cursor.Peek(1)
	if next.hasNewlineBefore {
		return js_ast.Expr{}, false
	}

	if next.kind == js_lexer.TFunction {
		p.cursor.Advance() // 'async'
		return p.parseFunctionExprAsync(g, loc, true), true
	}

	// "async x => ..." needs a third token of lookahead to see "=>"; a
	// bounded exception to the usual ≤2-token rule, justified the same
	// way esbuild's own arrow-vs-call disambiguation is: once "async" is
	// directly followed by an identifier directly followed by "=>",
	// nothing else that token sequence could mean survives.
	if next.kind == js_lexer.TIdentifier {
		third := p.cursor.Peek(2)
		if third.kind == js_lexer.TEqualsGreaterThan && !next.hasNewlineBefore && !third.hasNewlineBefore {
			p.cursor.Advance() // 'async'
			paramLoc := p.cursor.Cur().loc
			ref := p.interner.Intern(p.cursor.Cur().identifier)
			p.cursor.Advance() // identifier
			p.cursor.Advance() // '=>'
			arg := js_ast.Arg{Binding: js_ast.Binding{Loc: paramLoc, Data: &js_ast.BIdentifier{Ref: ref}}}
			return p.parseArrowBody(g, loc, []js_ast.Arg{arg}, true), true
		}
	}

	if next.kind == js_lexer.TOpenParen {
		// "async (" could be an async arrow or a call to a variable
		// literally named "async"; the "=>" check after the matching
		// ")" decides between them, the same way parseParenExprOrArrow
		// decides for an unprefixed "(...)".
		p.cursor.Advance() // 'async'
		items := p.parseParenItems(g)

		if p.cursor.Cur().kind == js_lexer.TEqualsGreaterThan && !p.cursor.Cur().hasNewlineBefore {
			p.cursor.Advance() // '=>'
			args := make([]js_ast.Arg, 0, len(items))
			for _, item := range items {
				if assign, ok := item.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
					args = append(args, js_ast.Arg{Binding: p.convertExprToBinding(assign.Left), DefaultOrNil: assign.Right})
					continue
				}
				if spread, ok := item.Data.(*js_ast.ESpread); ok {
					args = append(args, js_ast.Arg{Binding: p.convertExprToBinding(spread.Value)})
					continue
				}
				args = append(args, js_ast.Arg{Binding: p.convertExprToBinding(item)})
			}
			return p.parseArrowBody(g, loc, args, true), true
		}

		// Not an arrow after all: "async" was a plain identifier being
		// called, e.g. "async(x, y)". Further suffixes (member access,
		// another call, ...) are picked up by the caller's own
		// parseSuffix loop, same as any other primary expression.
		ref := p.interner.Intern("async")
		target := js_ast.Expr{Loc: loc, Data: &js_ast.EIdentifier{Ref: ref}}
		return js_ast.Expr{Loc: loc, Data: &js_ast.ECall{Target: target, Args: items}}, true
	}

	return js_ast.Expr{}, false
}

func (p *parser) parseArrayLiteral(g GrammarParams, loc logger.Loc) js_ast.Expr {
	p.cursor.Advance() // '['
	var items []js_ast.Expr
	for p.cursor.Cur().kind != js_lexer.TCloseBracket {
		if p.cursor.Cur().kind == js_lexer.TComma {
			p.cursor.Advance()
			items = append(items, js_ast.Expr{Loc: p.cursor.Cur().loc, Data: &js_ast.EMissing{}})
			continue
		}
		if _, ok := p.cursor.NextIf(js_lexer.TDotDotDot); ok {
			value := p.parseExpr(g.WithIn(true), js_ast.LAssign)
			items = append(items, js_ast.Expr{Loc: value.Loc, Data: &js_ast.ESpread{Value: value}})
		} else {
			items = append(items, p.parseExpr(g.WithIn(true), js_ast.LAssign))
		}
		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	p.cursor.Expect(js_lexer.TCloseBracket, "array literal")
	return js_ast.Expr{Loc: loc, Data: &js_ast.EArray{Items: items}}
}

// parseParenItems parses "(" through the matching ")" into a raw item
// list (each element an ordinary assignment expression or an ESpread),
// leaving the cursor just past ")". Shared by parseParenExprOrArrow and
// the "async(" call-vs-arrow disambiguation in tryParseAsyncPrimary.
func (p *parser) parseParenItems(g GrammarParams) []js_ast.Expr {
	p.cursor.Advance() // '('

	var items []js_ast.Expr
	for p.cursor.Cur().kind != js_lexer.TCloseParen {
		if _, ok := p.cursor.NextIf(js_lexer.TDotDotDot); ok {
			value := p.parseExpr(g.WithIn(true), js_ast.LAssign)
			items = append(items, js_ast.Expr{Loc: value.Loc, Data: &js_ast.ESpread{Value: value}})
		} else {
			items = append(items, p.parseExpr(g.WithIn(true), js_ast.LAssign))
		}
		if _, ok := p.cursor.NextIf(js_lexer.TComma); !ok {
			break
		}
	}
	p.cursor.Expect(js_lexer.TCloseParen, "parenthesized expression")
	return items
}

// parseParenExprOrArrow parses a parenthesized expression list, then
// decides between a plain (possibly comma-) expression and an arrow
// function body the moment it sees whether "=>" follows the closing
// ")" — esbuild's own strategy for keeping this bounded to one token
// of extra lookahead instead of unbounded backtracking.
func (p *parser) parseParenExprOrArrow(g GrammarParams, loc logger.Loc) js_ast.Expr {
	items := p.parseParenItems(g)

	if p.cursor.Cur().kind == js_lexer.TEqualsGreaterThan && !p.cursor.Cur().hasNewlineBefore {
		p.cursor.Advance() // '=>'
		args := make([]js_ast.Arg, 0, len(items))
		for _, item := range items {
			if assign, ok := item.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
				args = append(args, js_ast.Arg{Binding: p.convertExprToBinding(assign.Left), DefaultOrNil: assign.Right})
				continue
			}
			if spread, ok := item.Data.(*js_ast.ESpread); ok {
				args = append(args, js_ast.Arg{Binding: p.convertExprToBinding(spread.Value)})
				continue
			}
			args = append(args, js_ast.Arg{Binding: p.convertExprToBinding(item)})
		}
		return p.parseArrowBody(g, loc, args, false)
	}

	if len(items) == 0 {
		p.fail(newGeneral(p.source, "expected an expression but found \")\"", loc))
	}
	expr := items[0]
	for _, rest := range items[1:] {
		expr = js_ast.Expr{Loc: expr.Loc, Data: &js_ast.EBinary{Op: js_ast.BinOpComma, Left: expr, Right: rest}}
	}
	return expr
}

func (p *parser) parseArrowBody(g GrammarParams, loc logger.Loc, args []js_ast.Arg, isAsync bool) js_ast.Expr {
	bodyG := g.ForFunctionBody(false, isAsync)

	if p.cursor.Cur().kind == js_lexer.TOpenBrace {
		body := p.parseFunctionBody(bodyG)
		return js_ast.Expr{Loc: loc, Data: &js_ast.EArrow{Args: args, Body: body, IsAsync: isAsync}}
	}

	exprLoc := p.cursor.Cur().loc
	value := p.parseExpr(bodyG, js_ast.LAssign)
	block := js_ast.SBlock{Stmts: []js_ast.Stmt{{Loc: exprLoc, Data: &js_ast.SReturn{ValueOrNil: value}}}}
	return js_ast.Expr{Loc: loc, Data: &js_ast.EArrow{Args: args, Body: js_ast.FnBody{Block: block, Loc: exprLoc}, PreferExpr: true, IsAsync: isAsync}}
}

// convertExprToBinding reinterprets an already-parsed expression as a
// destructuring binding target, for the case where "(" ... ")" turned
// out to be an arrow function's parameter list once "=>" appeared.
// Grounded on esbuild's convertExprToBinding, simplified to a direct
// conversion rather than threading an invalid-token log through every
// caller.
func (p *parser) convertExprToBinding(expr js_ast.Expr) js_ast.Binding {
	switch e := expr.Data.(type) {
	case *js_ast.EIdentifier:
		return js_ast.Binding{Loc: expr.Loc, Data: &js_ast.BIdentifier{Ref: e.Ref}}

	case *js_ast.EMissing:
		return js_ast.Binding{Loc: expr.Loc, Data: &js_ast.BMissing{}}

	case *js_ast.EArray:
		items := make([]js_ast.ArrayBinding, 0, len(e.Items))
		hasSpread := false
		for _, item := range e.Items {
			if spread, ok := item.Data.(*js_ast.ESpread); ok {
				hasSpread = true
				items = append(items, js_ast.ArrayBinding{Binding: p.convertExprToBinding(spread.Value)})
				continue
			}
			if assign, ok := item.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
				items = append(items, js_ast.ArrayBinding{Binding: p.convertExprToBinding(assign.Left), DefaultValueOrNil: assign.Right})
				continue
			}
			items = append(items, js_ast.ArrayBinding{Binding: p.convertExprToBinding(item)})
		}
		return js_ast.Binding{Loc: expr.Loc, Data: &js_ast.BArray{Items: items, HasSpread: hasSpread}}

	case *js_ast.EObject:
		props := make([]js_ast.PropertyBinding, 0, len(e.Properties))
		for _, prop := range e.Properties {
			if prop.Kind == js_ast.PropertySpread {
				props = append(props, js_ast.PropertyBinding{Value: p.convertExprToBinding(prop.ValueOrNil), IsSpread: true})
				continue
			}
			value := prop.ValueOrNil
			def := prop.InitializerOrNil
			if assign, ok := value.Data.(*js_ast.EBinary); ok && assign.Op == js_ast.BinOpAssign {
				value = assign.Left
				def = assign.Right
			}
			props = append(props, js_ast.PropertyBinding{
				Key:               prop.Key,
				Value:             p.convertExprToBinding(value),
				DefaultValueOrNil: def,
				IsComputed:        prop.IsComputed,
			})
		}
		return js_ast.Binding{Loc: expr.Loc, Data: &js_ast.BObject{Properties: props}}

	default:
		p.fail(newGeneral(p.source, "invalid destructuring assignment target", expr.Loc))
		panic("unreachable")
	}
}
