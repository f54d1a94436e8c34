package interp

import "github.com/consize-lang/consize/pkg/value"

// BuiltinDict builds the dictionary of every primitive operator (§4.C),
// inserted in this fixed order so that get-dict's first-insertion-wins
// snapshot always has the primitives occupy their names first.
func BuiltinDict() *value.Map {
	d := value.NewMap()
	for _, b := range []struct {
		name string
		fn   value.PrimFn
	}{
		{"dup", builtinDup},
		{"drop", builtinDrop},
		{"swap", builtinSwap},
		{"rot", builtinRot},

		{"emptystack", builtinEmptyStack},
		{"push", builtinPush},
		{"top", builtinTop},
		{"pop", builtinPop},
		{"concat", builtinConcat},
		{"reverse", builtinReverse},

		{"mapping", builtinMapping},
		{"unmap", builtinUnmap},
		{"keys", builtinKeys},
		{"assoc", builtinAssoc},
		{"dissoc", builtinDissoc},
		{"get", builtinGet},
		{"merge", builtinMerge},

		{"word", builtinWord},
		{"unword", builtinUnword},
		{"char", builtinChar},

		{"type", builtinType},
		{"equal?", builtinEqual},
		{"identical?", builtinIdentical},
		{"integer?", builtinIsInteger},
		{"undocument", builtinUndocument},

		{"+", builtinAdd},
		{"-", builtinSub},
		{"*", builtinMul},
		{"div", builtinDiv},
		{"mod", builtinMod},
		{"<", builtinLt},
		{">", builtinGt},
		{"==", builtinNumEq},
		{"<=", builtinLe},
		{">=", builtinGe},

		{"print", builtinPrint},
		{"flush", builtinFlush},
		{"read-line", builtinReadLine},
		{"slurp", builtinSlurp},
		{"spit", builtinSpit},
		{"spit-on", builtinSpitOn},

		{"uncomment", builtinUncomment},
		{"tokenize", builtinTokenize},

		{"current-time-millis", builtinCurrentTimeMillis},
		{"operating-system", builtinOperatingSystem},

		{"get-dict", builtinGetDict},
		{"set-dict", builtinSetDict},

		{"read-word", builtinReadWord},
		{"read-mapping", builtinReadMapping},

		{"call", builtinCall},
		{"call/cc", builtinCallCC},
		{"continue", builtinContinue},
		{"stepcc", builtinStepcc},
		{"apply", builtinApply},
		{"func", builtinFunc},
		{"compose", builtinCompose},
		{"\\", builtinBackslash},
	} {
		d = d.Assoc(value.Word(b.name), value.NewPrimFun(b.name, b.fn))
	}
	return d
}
