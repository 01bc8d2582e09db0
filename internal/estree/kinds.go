package estree

import (
	"fmt"

	"github.com/typescript-eslint/tsequiv/internal/utils"
)

// Kind is a compiler-shape node or token kind. The numbering is owned by this
// registry; the companion script renumbers the compiler's kinds into it by name.
type Kind int

const (
	KindUnknown        Kind = 0
	KindEndOfFileToken Kind = 1

	KindNumericLiteral                Kind = 8
	KindBigIntLiteral                 Kind = 9
	KindStringLiteral                 Kind = 10
	KindRegularExpressionLiteral      Kind = 13
	KindNoSubstitutionTemplateLiteral Kind = 14

	KindLessThanToken                          Kind = 29
	KindGreaterThanToken                       Kind = 31
	KindLessThanEqualsToken                    Kind = 32
	KindGreaterThanEqualsToken                 Kind = 33
	KindEqualsEqualsToken                      Kind = 34
	KindExclamationEqualsToken                 Kind = 35
	KindEqualsEqualsEqualsToken                Kind = 36
	KindExclamationEqualsEqualsToken           Kind = 37
	KindPlusToken                              Kind = 39
	KindMinusToken                             Kind = 40
	KindAsteriskToken                          Kind = 41
	KindAsteriskAsteriskToken                  Kind = 42
	KindSlashToken                             Kind = 43
	KindPercentToken                           Kind = 44
	KindPlusPlusToken                          Kind = 45
	KindMinusMinusToken                        Kind = 46
	KindLessThanLessThanToken                  Kind = 47
	KindGreaterThanGreaterThanToken            Kind = 48
	KindGreaterThanGreaterThanGreaterThanToken Kind = 49
	KindAmpersandToken                         Kind = 50
	KindBarToken                               Kind = 51
	KindCaretToken                             Kind = 52
	KindExclamationToken                       Kind = 53
	KindTildeToken                             Kind = 54
	KindAmpersandAmpersandToken                Kind = 55
	KindBarBarToken                            Kind = 56
	KindQuestionQuestionToken                  Kind = 60
	KindEqualsToken                            Kind = 63
	KindPlusEqualsToken                        Kind = 64
	KindMinusEqualsToken                       Kind = 65
	KindAsteriskEqualsToken                    Kind = 66
	KindAsteriskAsteriskEqualsToken            Kind = 67
	KindSlashEqualsToken                       Kind = 68
	KindPercentEqualsToken                     Kind = 69

	KindIdentifier        Kind = 79
	KindPrivateIdentifier Kind = 80

	KindClassKeyword      Kind = 84
	KindConstKeyword      Kind = 85
	KindDefaultKeyword    Kind = 88
	KindEnumKeyword       Kind = 92
	KindExportKeyword     Kind = 93
	KindFalseKeyword      Kind = 95
	KindFunctionKeyword   Kind = 98
	KindInKeyword         Kind = 101
	KindInstanceOfKeyword Kind = 102
	KindNullKeyword       Kind = 104
	KindSuperKeyword      Kind = 106
	KindThisKeyword       Kind = 108
	KindTrueKeyword       Kind = 110
	KindVarKeyword        Kind = 113
	KindVoidKeyword       Kind = 114
	KindImplementsKeyword Kind = 117
	KindInterfaceKeyword  Kind = 118
	KindPrivateKeyword    Kind = 121
	KindProtectedKeyword  Kind = 122
	KindPublicKeyword     Kind = 123
	KindStaticKeyword     Kind = 124
	KindAbstractKeyword   Kind = 126
	KindAnyKeyword        Kind = 130
	KindAsyncKeyword      Kind = 131
	KindBooleanKeyword    Kind = 133
	KindDeclareKeyword    Kind = 135
	KindInferKeyword      Kind = 137
	KindKeyOfKeyword      Kind = 140
	KindModuleKeyword     Kind = 141
	KindNeverKeyword      Kind = 143
	KindReadonlyKeyword   Kind = 144
	KindNumberKeyword     Kind = 146
	KindObjectKeyword     Kind = 147
	KindStringKeyword     Kind = 149
	KindSymbolKeyword     Kind = 150
	KindTypeKeyword       Kind = 151
	KindUndefinedKeyword  Kind = 152
	KindUnknownKeyword    Kind = 154
	KindOverrideKeyword   Kind = 159

	KindComputedPropertyName Kind = 161
	KindTypeParameter        Kind = 162
	KindParameter            Kind = 163
	KindDecorator            Kind = 164
	KindPropertySignature    Kind = 165
	KindPropertyDeclaration  Kind = 166
	KindMethodSignature      Kind = 167
	KindMethodDeclaration    Kind = 168
	KindConstructor          Kind = 169
	KindGetAccessor          Kind = 170
	KindSetAccessor          Kind = 171
	KindCallSignature        Kind = 172
	KindConstructSignature   Kind = 173
	KindIndexSignature       Kind = 174
	KindTypePredicate        Kind = 175
	KindTypeReference        Kind = 176
	KindFunctionType         Kind = 177
	KindConstructorType      Kind = 178
	KindTypeQuery            Kind = 179
	KindTypeLiteral          Kind = 180
	KindArrayType            Kind = 181
	KindTupleType            Kind = 182
	KindOptionalType         Kind = 183
	KindRestType             Kind = 184
	KindUnionType            Kind = 185
	KindIntersectionType     Kind = 186
	KindConditionalType      Kind = 187
	KindInferType            Kind = 188
	KindParenthesizedType    Kind = 189
	KindThisType             Kind = 190
	KindTypeOperator         Kind = 191
	KindIndexedAccessType    Kind = 192
	KindMappedType           Kind = 193
	KindLiteralType          Kind = 194
	KindImportType           Kind = 198

	KindObjectBindingPattern        Kind = 199
	KindArrayBindingPattern         Kind = 200
	KindBindingElement              Kind = 201
	KindArrayLiteralExpression      Kind = 202
	KindObjectLiteralExpression     Kind = 203
	KindPropertyAccessExpression    Kind = 204
	KindElementAccessExpression     Kind = 205
	KindCallExpression              Kind = 206
	KindNewExpression               Kind = 207
	KindTaggedTemplateExpression    Kind = 208
	KindTypeAssertionExpression     Kind = 209
	KindParenthesizedExpression     Kind = 210
	KindFunctionExpression          Kind = 211
	KindArrowFunction               Kind = 212
	KindDeleteExpression            Kind = 213
	KindTypeOfExpression            Kind = 214
	KindVoidExpression              Kind = 215
	KindAwaitExpression             Kind = 216
	KindPrefixUnaryExpression       Kind = 217
	KindPostfixUnaryExpression      Kind = 218
	KindBinaryExpression            Kind = 219
	KindConditionalExpression       Kind = 220
	KindTemplateExpression          Kind = 221
	KindYieldExpression             Kind = 222
	KindSpreadElement               Kind = 223
	KindClassExpression             Kind = 224
	KindOmittedExpression           Kind = 225
	KindExpressionWithTypeArguments Kind = 226
	KindAsExpression                Kind = 227
	KindNonNullExpression           Kind = 228
	KindMetaProperty                Kind = 229
	KindSatisfiesExpression         Kind = 231
	KindBlock                       Kind = 232
	KindEmptyStatement              Kind = 233
	KindVariableStatement           Kind = 234
	KindExpressionStatement         Kind = 235
	KindIfStatement                 Kind = 236
	KindDoStatement                 Kind = 237
	KindWhileStatement              Kind = 238
	KindForStatement                Kind = 239
	KindForInStatement              Kind = 240
	KindForOfStatement              Kind = 241
	KindContinueStatement           Kind = 242
	KindBreakStatement              Kind = 243
	KindReturnStatement             Kind = 244
	KindThrowStatement              Kind = 248
	KindTryStatement                Kind = 249
	KindVariableDeclaration         Kind = 251
	KindVariableDeclarationList     Kind = 252
	KindFunctionDeclaration         Kind = 253
	KindClassDeclaration            Kind = 254
	KindInterfaceDeclaration        Kind = 255
	KindTypeAliasDeclaration        Kind = 256
	KindEnumDeclaration             Kind = 257
	KindModuleDeclaration           Kind = 258
	KindImportEqualsDeclaration     Kind = 262
	KindHeritageClause              Kind = 288
	KindPropertyAssignment          Kind = 293
	KindShorthandPropertyAssignment Kind = 294
	KindSpreadAssignment            Kind = 295
	KindSourceFile                  Kind = 298

	KindTemplateHead   Kind = 15
	KindTemplateMiddle Kind = 16
	KindTemplateTail   Kind = 17

	KindCommaToken                                   Kind = 27
	KindLessThanLessThanEqualsToken                  Kind = 70
	KindGreaterThanGreaterThanEqualsToken            Kind = 71
	KindGreaterThanGreaterThanGreaterThanEqualsToken Kind = 72
	KindAmpersandEqualsToken                         Kind = 73
	KindBarEqualsToken                               Kind = 74
	KindBarBarEqualsToken                            Kind = 75
	KindAmpersandAmpersandEqualsToken                Kind = 76
	KindQuestionQuestionEqualsToken                  Kind = 77
	KindCaretEqualsToken                             Kind = 78

	KindExtendsKeyword Kind = 94
	KindImportKeyword  Kind = 100
	KindNewKeyword     Kind = 103

	KindTemplateSpan                Kind = 230
	KindWithStatement               Kind = 245
	KindSwitchStatement             Kind = 246
	KindLabeledStatement            Kind = 247
	KindDebuggerStatement           Kind = 250
	KindCaseBlock                   Kind = 260
	KindSemicolonClassElement       Kind = 285
	KindCaseClause                  Kind = 286
	KindDefaultClause               Kind = 287
	KindCatchClause                 Kind = 289
	KindClassStaticBlockDeclaration Kind = 296
)

// Kinds without a registry entry are offset by this amount by the companion
// script so they never collide with registered ones.
const UnregisteredKindOffset Kind = 100000

var kindNames = map[Kind]string{
	KindUnknown:        "Unknown",
	KindEndOfFileToken: "EndOfFileToken",

	KindNumericLiteral:                "NumericLiteral",
	KindBigIntLiteral:                 "BigIntLiteral",
	KindStringLiteral:                 "StringLiteral",
	KindRegularExpressionLiteral:      "RegularExpressionLiteral",
	KindNoSubstitutionTemplateLiteral: "NoSubstitutionTemplateLiteral",

	KindLessThanToken:                          "LessThanToken",
	KindGreaterThanToken:                       "GreaterThanToken",
	KindLessThanEqualsToken:                    "LessThanEqualsToken",
	KindGreaterThanEqualsToken:                 "GreaterThanEqualsToken",
	KindEqualsEqualsToken:                      "EqualsEqualsToken",
	KindExclamationEqualsToken:                 "ExclamationEqualsToken",
	KindEqualsEqualsEqualsToken:                "EqualsEqualsEqualsToken",
	KindExclamationEqualsEqualsToken:           "ExclamationEqualsEqualsToken",
	KindPlusToken:                              "PlusToken",
	KindMinusToken:                             "MinusToken",
	KindAsteriskToken:                          "AsteriskToken",
	KindAsteriskAsteriskToken:                  "AsteriskAsteriskToken",
	KindSlashToken:                             "SlashToken",
	KindPercentToken:                           "PercentToken",
	KindPlusPlusToken:                          "PlusPlusToken",
	KindMinusMinusToken:                        "MinusMinusToken",
	KindLessThanLessThanToken:                  "LessThanLessThanToken",
	KindGreaterThanGreaterThanToken:            "GreaterThanGreaterThanToken",
	KindGreaterThanGreaterThanGreaterThanToken: "GreaterThanGreaterThanGreaterThanToken",
	KindAmpersandToken:                         "AmpersandToken",
	KindBarToken:                               "BarToken",
	KindCaretToken:                             "CaretToken",
	KindExclamationToken:                       "ExclamationToken",
	KindTildeToken:                             "TildeToken",
	KindAmpersandAmpersandToken:                "AmpersandAmpersandToken",
	KindBarBarToken:                            "BarBarToken",
	KindQuestionQuestionToken:                  "QuestionQuestionToken",
	KindEqualsToken:                            "EqualsToken",
	KindPlusEqualsToken:                        "PlusEqualsToken",
	KindMinusEqualsToken:                       "MinusEqualsToken",
	KindAsteriskEqualsToken:                    "AsteriskEqualsToken",
	KindAsteriskAsteriskEqualsToken:            "AsteriskAsteriskEqualsToken",
	KindSlashEqualsToken:                       "SlashEqualsToken",
	KindPercentEqualsToken:                     "PercentEqualsToken",

	KindIdentifier:        "Identifier",
	KindPrivateIdentifier: "PrivateIdentifier",

	KindClassKeyword:      "ClassKeyword",
	KindConstKeyword:      "ConstKeyword",
	KindDefaultKeyword:    "DefaultKeyword",
	KindEnumKeyword:       "EnumKeyword",
	KindExportKeyword:     "ExportKeyword",
	KindFalseKeyword:      "FalseKeyword",
	KindFunctionKeyword:   "FunctionKeyword",
	KindInKeyword:         "InKeyword",
	KindInstanceOfKeyword: "InstanceOfKeyword",
	KindNullKeyword:       "NullKeyword",
	KindSuperKeyword:      "SuperKeyword",
	KindThisKeyword:       "ThisKeyword",
	KindTrueKeyword:       "TrueKeyword",
	KindVarKeyword:        "VarKeyword",
	KindVoidKeyword:       "VoidKeyword",
	KindImplementsKeyword: "ImplementsKeyword",
	KindInterfaceKeyword:  "InterfaceKeyword",
	KindPrivateKeyword:    "PrivateKeyword",
	KindProtectedKeyword:  "ProtectedKeyword",
	KindPublicKeyword:     "PublicKeyword",
	KindStaticKeyword:     "StaticKeyword",
	KindAbstractKeyword:   "AbstractKeyword",
	KindAnyKeyword:        "AnyKeyword",
	KindAsyncKeyword:      "AsyncKeyword",
	KindBooleanKeyword:    "BooleanKeyword",
	KindDeclareKeyword:    "DeclareKeyword",
	KindInferKeyword:      "InferKeyword",
	KindKeyOfKeyword:      "KeyOfKeyword",
	KindModuleKeyword:     "ModuleKeyword",
	KindNeverKeyword:      "NeverKeyword",
	KindReadonlyKeyword:   "ReadonlyKeyword",
	KindNumberKeyword:     "NumberKeyword",
	KindObjectKeyword:     "ObjectKeyword",
	KindStringKeyword:     "StringKeyword",
	KindSymbolKeyword:     "SymbolKeyword",
	KindTypeKeyword:       "TypeKeyword",
	KindUndefinedKeyword:  "UndefinedKeyword",
	KindUnknownKeyword:    "UnknownKeyword",
	KindOverrideKeyword:   "OverrideKeyword",

	KindComputedPropertyName: "ComputedPropertyName",
	KindTypeParameter:        "TypeParameter",
	KindParameter:            "Parameter",
	KindDecorator:            "Decorator",
	KindPropertySignature:    "PropertySignature",
	KindPropertyDeclaration:  "PropertyDeclaration",
	KindMethodSignature:      "MethodSignature",
	KindMethodDeclaration:    "MethodDeclaration",
	KindConstructor:          "Constructor",
	KindGetAccessor:          "GetAccessor",
	KindSetAccessor:          "SetAccessor",
	KindCallSignature:        "CallSignature",
	KindConstructSignature:   "ConstructSignature",
	KindIndexSignature:       "IndexSignature",
	KindTypePredicate:        "TypePredicate",
	KindTypeReference:        "TypeReference",
	KindFunctionType:         "FunctionType",
	KindConstructorType:      "ConstructorType",
	KindTypeQuery:            "TypeQuery",
	KindTypeLiteral:          "TypeLiteral",
	KindArrayType:            "ArrayType",
	KindTupleType:            "TupleType",
	KindOptionalType:         "OptionalType",
	KindRestType:             "RestType",
	KindUnionType:            "UnionType",
	KindIntersectionType:     "IntersectionType",
	KindConditionalType:      "ConditionalType",
	KindInferType:            "InferType",
	KindParenthesizedType:    "ParenthesizedType",
	KindThisType:             "ThisType",
	KindTypeOperator:         "TypeOperator",
	KindIndexedAccessType:    "IndexedAccessType",
	KindMappedType:           "MappedType",
	KindLiteralType:          "LiteralType",
	KindImportType:           "ImportType",

	KindObjectBindingPattern:        "ObjectBindingPattern",
	KindArrayBindingPattern:         "ArrayBindingPattern",
	KindBindingElement:              "BindingElement",
	KindArrayLiteralExpression:      "ArrayLiteralExpression",
	KindObjectLiteralExpression:     "ObjectLiteralExpression",
	KindPropertyAccessExpression:    "PropertyAccessExpression",
	KindElementAccessExpression:     "ElementAccessExpression",
	KindCallExpression:              "CallExpression",
	KindNewExpression:               "NewExpression",
	KindTaggedTemplateExpression:    "TaggedTemplateExpression",
	KindTypeAssertionExpression:     "TypeAssertionExpression",
	KindParenthesizedExpression:     "ParenthesizedExpression",
	KindFunctionExpression:          "FunctionExpression",
	KindArrowFunction:               "ArrowFunction",
	KindDeleteExpression:            "DeleteExpression",
	KindTypeOfExpression:            "TypeOfExpression",
	KindVoidExpression:              "VoidExpression",
	KindAwaitExpression:             "AwaitExpression",
	KindPrefixUnaryExpression:       "PrefixUnaryExpression",
	KindPostfixUnaryExpression:      "PostfixUnaryExpression",
	KindBinaryExpression:            "BinaryExpression",
	KindConditionalExpression:       "ConditionalExpression",
	KindTemplateExpression:          "TemplateExpression",
	KindYieldExpression:             "YieldExpression",
	KindSpreadElement:               "SpreadElement",
	KindClassExpression:             "ClassExpression",
	KindOmittedExpression:           "OmittedExpression",
	KindExpressionWithTypeArguments: "ExpressionWithTypeArguments",
	KindAsExpression:                "AsExpression",
	KindNonNullExpression:           "NonNullExpression",
	KindMetaProperty:                "MetaProperty",
	KindSatisfiesExpression:         "SatisfiesExpression",
	KindBlock:                       "Block",
	KindEmptyStatement:              "EmptyStatement",
	KindVariableStatement:           "VariableStatement",
	KindExpressionStatement:         "ExpressionStatement",
	KindIfStatement:                 "IfStatement",
	KindDoStatement:                 "DoStatement",
	KindWhileStatement:              "WhileStatement",
	KindForStatement:                "ForStatement",
	KindForInStatement:              "ForInStatement",
	KindForOfStatement:              "ForOfStatement",
	KindContinueStatement:           "ContinueStatement",
	KindBreakStatement:              "BreakStatement",
	KindReturnStatement:             "ReturnStatement",
	KindThrowStatement:              "ThrowStatement",
	KindTryStatement:                "TryStatement",
	KindVariableDeclaration:         "VariableDeclaration",
	KindVariableDeclarationList:     "VariableDeclarationList",
	KindFunctionDeclaration:         "FunctionDeclaration",
	KindClassDeclaration:            "ClassDeclaration",
	KindInterfaceDeclaration:        "InterfaceDeclaration",
	KindTypeAliasDeclaration:        "TypeAliasDeclaration",
	KindEnumDeclaration:             "EnumDeclaration",
	KindModuleDeclaration:           "ModuleDeclaration",
	KindImportEqualsDeclaration:     "ImportEqualsDeclaration",
	KindHeritageClause:              "HeritageClause",
	KindPropertyAssignment:          "PropertyAssignment",
	KindShorthandPropertyAssignment: "ShorthandPropertyAssignment",
	KindSpreadAssignment:            "SpreadAssignment",
	KindSourceFile:                  "SourceFile",

	KindTemplateHead:                "TemplateHead",
	KindTemplateMiddle:              "TemplateMiddle",
	KindTemplateTail:                "TemplateTail",
	KindExtendsKeyword:              "ExtendsKeyword",
	KindImportKeyword:               "ImportKeyword",
	KindTemplateSpan:                "TemplateSpan",
	KindWithStatement:               "WithStatement",
	KindSwitchStatement:             "SwitchStatement",
	KindLabeledStatement:            "LabeledStatement",
	KindDebuggerStatement:           "DebuggerStatement",
	KindCaseBlock:                   "CaseBlock",
	KindSemicolonClassElement:       "SemicolonClassElement",
	KindCaseClause:                  "CaseClause",
	KindDefaultClause:               "DefaultClause",
	KindCatchClause:                 "CatchClause",
	KindClassStaticBlockDeclaration: "ClassStaticBlockDeclaration",

	KindCommaToken:                                   "CommaToken",
	KindLessThanLessThanEqualsToken:                  "LessThanLessThanEqualsToken",
	KindGreaterThanGreaterThanEqualsToken:            "GreaterThanGreaterThanEqualsToken",
	KindGreaterThanGreaterThanGreaterThanEqualsToken: "GreaterThanGreaterThanGreaterThanEqualsToken",
	KindAmpersandEqualsToken:                         "AmpersandEqualsToken",
	KindBarEqualsToken:                               "BarEqualsToken",
	KindBarBarEqualsToken:                            "BarBarEqualsToken",
	KindAmpersandAmpersandEqualsToken:                "AmpersandAmpersandEqualsToken",
	KindQuestionQuestionEqualsToken:                  "QuestionQuestionEqualsToken",
	KindCaretEqualsToken:                             "CaretEqualsToken",
	KindNewKeyword:                                   "NewKeyword",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Registered reports whether k has an entry in the registry.
func (k Kind) Registered() bool {
	_, ok := kindNames[k]
	return ok
}

func KindFromName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// KindTable returns the name to kind mapping handed to the companion script.
func KindTable() map[string]Kind {
	m := make(map[string]Kind, len(kindsByName))
	for name, k := range kindsByName {
		m[name] = k
	}
	return m
}

// Type-only syntax: nodes of these kinds are deleted outright. Heritage
// clauses are handled separately since only `implements` clauses are type-only.
var typeOnlyKinds = utils.Set(
	KindImplementsKeyword,
	KindInterfaceKeyword,
	KindAbstractKeyword,
	KindAnyKeyword,
	KindDeclareKeyword,
	KindInferKeyword,
	KindKeyOfKeyword,
	KindModuleKeyword,
	KindNeverKeyword,
	KindReadonlyKeyword,
	KindTypeKeyword,
	KindUnknownKeyword,
	KindBooleanKeyword,
	KindNumberKeyword,
	KindObjectKeyword,
	KindStringKeyword,
	KindSymbolKeyword,
	KindVoidKeyword,
	KindUndefinedKeyword,

	KindTypeParameter,
	KindDecorator,
	KindPropertySignature,
	KindMethodSignature,
	KindCallSignature,
	KindConstructSignature,
	KindIndexSignature,
	KindTypePredicate,
	KindTypeReference,
	KindFunctionType,
	KindConstructorType,
	KindTypeQuery,
	KindTypeLiteral,
	KindArrayType,
	KindTupleType,
	KindOptionalType,
	KindRestType,
	KindUnionType,
	KindIntersectionType,
	KindConditionalType,
	KindInferType,
	KindParenthesizedType,
	KindThisType,
	KindTypeOperator,
	KindIndexedAccessType,
	KindMappedType,
	KindLiteralType,
	KindImportType,

	KindInterfaceDeclaration,
	KindTypeAliasDeclaration,
	KindEnumDeclaration,
	KindModuleDeclaration,
	KindImportEqualsDeclaration,
)

// Esprima-shape discriminants (typescript-estree style) that are type-only.
var typeOnlyNames = func() map[string]struct{} {
	names := utils.Set(
		"TSTypeAnnotation",
		"TypeAnnotation",
		"TSParameterProperty",
		"CallSignatureDeclaration",
		"ConstructSignatureDeclaration",
		"IndexSignatureDeclaration",
		"MethodSignature",
		"PropertySignature",
		"TSMethodSignature",
		"TSPropertySignature",
		"TSInterfaceDeclaration",
		"TSTypeAliasDeclaration",
		"TSEnumDeclaration",
		"TSModuleDeclaration",
		"TSIntrinsicKeyword",
		"TSLiteralType",
		"TSStringLiteralType",
		"TSNumberLiteralType",
		"TSBooleanLiteralType",
		"TSNullKeyword",
		"TSDeclareFunction",
		"TSTypeParameterDeclaration",
		"TSTypeParameterInstantiation",
	)
	for k := range typeOnlyKinds {
		names[k.String()] = struct{}{}
	}
	return names
}()

// Keys that are never semantically meaningful.
var MetadataKeys = utils.Set(
	"loc", "range", "raw", "comments", "leadingComments", "trailingComments",
	"start", "end", "pos", "parent",
	"modifierFlagsCache", "transformFlags", "jsDoc", "jsDocCache", "flowNode",
	"checkFlags", "locals", "nextContainer", "symbol", "localSymbol", "emitNode",
	"parseDiagnostics", "bindDiagnostics", "bindSuggestionDiagnostics", "jsDocDiagnostics",
	"scriptKind", "isDeclarationFile", "hasNoDefaultLib", "externalModuleIndicator",
	"nodeCount", "identifierCount", "symbolCount", "languageVersion", "languageVariant",
	"fileName", "path", "resolvedPath", "originalFileName",
	"amdDependencies", "moduleAugmentations", "pragmas", "referencedFiles",
	"typeReferenceDirectives", "libReferenceDirectives", "commentDirectives",
	"tokens", "sourceType", "directive", "hasExtendedUnicodeEscape", "jsDocParsingMode",
	"endOfFileToken", "questionDotToken", "dotDotDotToken", "colonToken",
	"equalsGreaterThanToken", "asteriskToken", "lineMap", "imports", "identifiers",
	"classifiableNames", "setExternalModuleIndicator", "impliedNodeFormat",
)

// Keys that only carry static type information.
var TypeOnlyKeys = utils.Set(
	"typeAnnotation", "typeParameters", "typeArguments", "implements",
	"accessibility", "optional", "readonly", "decorators", "questionToken",
	"exclamationToken", "declare", "abstract", "definite", "override",
	"returnType", "nameType", "parameterName",
)

// Modifiers that only matter to the type system.
var typeOnlyModifierKinds = utils.Set(
	KindPublicKeyword,
	KindPrivateKeyword,
	KindProtectedKeyword,
	KindReadonlyKeyword,
	KindDeclareKeyword,
	KindAbstractKeyword,
	KindOverrideKeyword,
)

func IsTypeOnlyKind(k Kind) bool {
	_, ok := typeOnlyKinds[k]
	return ok
}

func IsTypeOnlyName(name string) bool {
	_, ok := typeOnlyNames[name]
	return ok
}

func IsMetadataKey(key string) bool {
	_, ok := MetadataKeys[key]
	return ok
}

// IsStrippedKey reports whether key is dropped from every node.
func IsStrippedKey(key string) bool {
	if IsMetadataKey(key) {
		return true
	}
	_, ok := TypeOnlyKeys[key]
	return ok
}

func IsTypeOnlyModifier(k Kind) bool {
	_, ok := typeOnlyModifierKinds[k]
	return ok
}

var binaryOperators = map[Kind]string{
	KindPlusToken:                                    "+",
	KindMinusToken:                                   "-",
	KindAsteriskToken:                                "*",
	KindSlashToken:                                   "/",
	KindPercentToken:                                 "%",
	KindAsteriskAsteriskToken:                        "**",
	KindAmpersandAmpersandToken:                      "&&",
	KindBarBarToken:                                  "||",
	KindQuestionQuestionToken:                        "??",
	KindLessThanToken:                                "<",
	KindGreaterThanToken:                             ">",
	KindLessThanEqualsToken:                          "<=",
	KindGreaterThanEqualsToken:                       ">=",
	KindEqualsEqualsToken:                            "==",
	KindExclamationEqualsToken:                       "!=",
	KindEqualsEqualsEqualsToken:                      "===",
	KindExclamationEqualsEqualsToken:                 "!==",
	KindLessThanLessThanToken:                        "<<",
	KindGreaterThanGreaterThanToken:                  ">>",
	KindGreaterThanGreaterThanGreaterThanToken:       ">>>",
	KindAmpersandToken:                               "&",
	KindBarToken:                                     "|",
	KindCaretToken:                                   "^",
	KindInKeyword:                                    "in",
	KindInstanceOfKeyword:                            "instanceof",
	KindEqualsToken:                                  "=",
	KindPlusEqualsToken:                              "+=",
	KindMinusEqualsToken:                             "-=",
	KindAsteriskEqualsToken:                          "*=",
	KindAsteriskAsteriskEqualsToken:                  "**=",
	KindSlashEqualsToken:                             "/=",
	KindPercentEqualsToken:                           "%=",
	KindLessThanLessThanEqualsToken:                  "<<=",
	KindGreaterThanGreaterThanEqualsToken:            ">>=",
	KindGreaterThanGreaterThanGreaterThanEqualsToken: ">>>=",
	KindAmpersandEqualsToken:                         "&=",
	KindBarEqualsToken:                               "|=",
	KindCaretEqualsToken:                             "^=",
	KindBarBarEqualsToken:                            "||=",
	KindAmpersandAmpersandEqualsToken:                "&&=",
	KindQuestionQuestionEqualsToken:                  "??=",
	KindCommaToken:                                   ",",
}

var unaryOperators = map[Kind]string{
	KindPlusToken:        "+",
	KindMinusToken:       "-",
	KindExclamationToken: "!",
	KindTildeToken:       "~",
	KindPlusPlusToken:    "++",
	KindMinusMinusToken:  "--",
}

// BinaryOperator returns the operator text for a binary operator token. Unknown
// kinds get a placeholder unique to the kind number.
func BinaryOperator(k Kind) string {
	if op, ok := binaryOperators[k]; ok {
		return op
	}
	return operatorPlaceholder(k)
}

func UnaryOperator(k Kind) string {
	if op, ok := unaryOperators[k]; ok {
		return op
	}
	return operatorPlaceholder(k)
}

func operatorPlaceholder(k Kind) string {
	return fmt.Sprintf("OP_KIND:%d", int(k))
}

type OperatorClass int

const (
	OperatorBinary OperatorClass = iota
	OperatorLogical
	OperatorAssignment
)

func ClassifyOperator(op string) OperatorClass {
	switch op {
	case "&&", "||", "??":
		return OperatorLogical
	case "=", "+=", "-=", "*=", "**=", "/=", "%=", "<<=", ">>=", ">>>=", "&=", "|=", "^=", "&&=", "||=", "??=":
		return OperatorAssignment
	}
	return OperatorBinary
}

// ExpressionType is the Esprima discriminant for a binary-like operator.
func (c OperatorClass) ExpressionType() string {
	switch c {
	case OperatorLogical:
		return ESTreeKindLogicalExpression
	case OperatorAssignment:
		return ESTreeKindAssignmentExpression
	}
	return ESTreeKindBinaryExpression
}
