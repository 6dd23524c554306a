package htmlhelper

// html401Entities lists the named character references defined by
// HTML 4.01. Names outside it, such as "colon" or "NewLine", are left
// encoded.
var html401Entities = toSet(
	// Latin-1
	"nbsp", "iexcl", "cent", "pound", "curren", "yen", "brvbar", "sect",
	"uml", "copy", "ordf", "laquo", "not", "shy", "reg", "macr",
	"deg", "plusmn", "sup2", "sup3", "acute", "micro", "para", "middot",
	"cedil", "sup1", "ordm", "raquo", "frac14", "frac12", "frac34", "iquest",
	"Agrave", "Aacute", "Acirc", "Atilde", "Auml", "Aring", "AElig", "Ccedil",
	"Egrave", "Eacute", "Ecirc", "Euml", "Igrave", "Iacute", "Icirc", "Iuml",
	"ETH", "Ntilde", "Ograve", "Oacute", "Ocirc", "Otilde", "Ouml", "times",
	"Oslash", "Ugrave", "Uacute", "Ucirc", "Uuml", "Yacute", "THORN", "szlig",
	"agrave", "aacute", "acirc", "atilde", "auml", "aring", "aelig", "ccedil",
	"egrave", "eacute", "ecirc", "euml", "igrave", "iacute", "icirc", "iuml",
	"eth", "ntilde", "ograve", "oacute", "ocirc", "otilde", "ouml", "divide",
	"oslash", "ugrave", "uacute", "ucirc", "uuml", "yacute", "thorn", "yuml",

	// symbols and Greek
	"fnof",
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
	"rho", "sigmaf", "sigma", "tau", "upsilon", "phi", "chi", "psi",
	"omega", "thetasym", "upsih", "piv",
	"bull", "hellip", "prime", "Prime", "oline", "frasl",
	"weierp", "image", "real", "trade", "alefsym",
	"larr", "uarr", "rarr", "darr", "harr", "crarr",
	"lArr", "uArr", "rArr", "dArr", "hArr",
	"forall", "part", "exist", "empty", "nabla", "isin", "notin", "ni",
	"prod", "sum", "minus", "lowast", "radic", "prop", "infin", "ang",
	"and", "or", "cap", "cup", "int", "there4", "sim", "cong",
	"asymp", "ne", "equiv", "le", "ge", "sub", "sup", "nsub",
	"sube", "supe", "oplus", "otimes", "perp", "sdot",
	"lceil", "rceil", "lfloor", "rfloor", "lang", "rang",
	"loz", "spades", "clubs", "hearts", "diams",

	// markup-significant and internationalization
	"quot", "amp", "lt", "gt",
	"OElig", "oelig", "Scaron", "scaron", "Yuml", "circ", "tilde",
	"ensp", "emsp", "thinsp", "zwnj", "zwj", "lrm", "rlm",
	"ndash", "mdash", "lsquo", "rsquo", "sbquo", "ldquo", "rdquo", "bdquo",
	"dagger", "Dagger", "permil", "lsaquo", "rsaquo", "euro",
)

// HTML 4.01 maps the angle brackets to the deprecated U+2329 and U+232A;
// the HTML5 table uses the mathematical brackets instead.
var html401Overrides = map[string]string{
	"lang": "\u2329",
	"rang": "\u232A",
}

func toSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
