package preprocess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consize-lang/consize/pkg/interp"
	"github.com/consize-lang/consize/pkg/value"
)

// quote builds a splice-ready body (exec-order tokens stored in reverse),
// mirroring reader.Tokenize and pkg/interp's test helper of the same name.
func quote(tokens ...string) *value.SubStack {
	items := make([]value.Value, len(tokens))
	for i, t := range tokens {
		items[len(items)-1-i] = value.Word(t)
	}
	return &value.SubStack{Items: items}
}

func runWord(t *testing.T, dict *value.Map, data []value.Value, word string) *value.State {
	t.Helper()
	s := &value.State{Data: data, Call: []value.Value{value.Word(word)}, Dict: dict}
	require.NoError(t, interp.Run(s))
	return s
}

func TestOptimizeLevelNoneClonesUnchanged(t *testing.T) {
	dict := interp.BuiltinDict()
	dict = dict.Assoc(value.Word("double"), value.NewSelfDefinedFun(quote("dup", "+")))
	out := Optimize(dict, LevelNone)
	fn, found := out.Get(value.Word("double"))
	require.True(t, found)
	require.True(t, fn.Equal(value.NewSelfDefinedFun(quote("dup", "+"))))
}

func TestLevel1InlinesNonRecursiveCall(t *testing.T) {
	dict := interp.BuiltinDict()
	dict = dict.Assoc(value.Word("double"), value.NewSelfDefinedFun(quote("dup", "+")))
	dict = dict.Assoc(value.Word("quadruple"), value.NewSelfDefinedFun(quote("double", "double")))

	out := Optimize(dict, Level1)
	fn, found := out.Get(value.Word("quadruple"))
	require.True(t, found)
	f := fn.(*value.Fun)
	require.False(t, f.IsPrimitive())
	// inlined body should no longer mention the word "double"
	for _, item := range f.Body.Items {
		if w, ok := item.(value.Word); ok {
			require.NotEqual(t, value.Word("double"), w)
		}
	}

	s := runWord(t, out, []value.Value{value.Word("2")}, "quadruple")
	require.Equal(t, value.Word("8"), s.Data[0])
}

func TestLevel1PreservesRecursiveSelfReference(t *testing.T) {
	dict := interp.BuiltinDict()
	// a (deliberately non-terminating if ever invoked) recursive definition;
	// we only check that optimizing it doesn't loop forever or panic.
	dict = dict.Assoc(value.Word("loop"), value.NewSelfDefinedFun(quote("loop")))
	out := Optimize(dict, Level1)
	fn, found := out.Get(value.Word("loop"))
	require.True(t, found)
	f := fn.(*value.Fun)
	require.Len(t, f.Body.Items, 1)
	require.Equal(t, value.Word("loop"), f.Body.Items[0])
}

func TestLevel1RespectsBackslashEscape(t *testing.T) {
	dict := interp.BuiltinDict()
	dict = dict.Assoc(value.Word("double"), value.NewSelfDefinedFun(quote("dup", "+")))
	dict = dict.Assoc(value.Word("name-it"), value.NewSelfDefinedFun(quote("\\", "double")))

	out := Optimize(dict, Level1)
	fn, found := out.Get(value.Word("name-it"))
	require.True(t, found)
	f := fn.(*value.Fun)
	require.Len(t, f.Body.Items, 1)
	require.Equal(t, value.Word("double"), f.Body.Items[0])
}

func TestLevel2BindsPrimitivesDirectly(t *testing.T) {
	dict := interp.BuiltinDict()
	dict = dict.Assoc(value.Word("double"), value.NewSelfDefinedFun(quote("dup", "+")))
	out := Optimize(dict, Level2)
	fn, found := out.Get(value.Word("double"))
	require.True(t, found)
	f := fn.(*value.Fun)
	for _, item := range f.Body.Items {
		_, isFun := item.(*value.Fun)
		require.True(t, isFun, "expected every bound primitive reference to be a *value.Fun, got %T", item)
	}

	s := runWord(t, out, []value.Value{value.Word("3")}, "double")
	require.Equal(t, value.Word("6"), s.Data[0])
}

func TestLevel3WrapsEveryRemainingToken(t *testing.T) {
	dict := interp.BuiltinDict()
	dict = dict.Assoc(value.Word("double"), value.NewSelfDefinedFun(quote("dup", "+")))
	out := Optimize(dict, Level3)

	s := runWord(t, out, []value.Value{value.Word("5")}, "double")
	require.Equal(t, value.Word("10"), s.Data[0])
}

func TestLevel4ComposesToASinglePrimitive(t *testing.T) {
	dict := interp.BuiltinDict()
	dict = dict.Assoc(value.Word("double"), value.NewSelfDefinedFun(quote("dup", "+")))
	out := Optimize(dict, Level4)

	fn, found := out.Get(value.Word("double"))
	require.True(t, found)
	f := fn.(*value.Fun)
	require.True(t, f.IsPrimitive())

	s := runWord(t, out, []value.Value{value.Word("7")}, "double")
	require.Equal(t, value.Word("14"), s.Data[0])
}

func TestLevel4PreservesOrderAcrossNestedCalls(t *testing.T) {
	dict := interp.BuiltinDict()
	dict = dict.Assoc(value.Word("inc"), value.NewSelfDefinedFun(quote("1", "+")))
	dict = dict.Assoc(value.Word("inc-twice"), value.NewSelfDefinedFun(quote("inc", "inc")))
	out := Optimize(dict, Level4)

	s := runWord(t, out, []value.Value{value.Word("10")}, "inc-twice")
	require.Equal(t, value.Word("12"), s.Data[0])
}
