// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

//go:generate go tool stringer -type Kind -trimprefix Kind

// Kind is the normalized classification of a syntax node.
//
// Several grammar node types map to the same Kind, so that the JavaScript and
// TypeScript grammars (and their releases) look the same to the analysis.
type Kind uint8

const (
	// KindOther is any node without special meaning for the analysis.
	KindOther Kind = iota

	// KindProgram is the root of a file.
	KindProgram

	// KindFunctionDeclaration is a named function statement.
	KindFunctionDeclaration

	// KindFunctionExpression is a function literal.
	KindFunctionExpression

	// KindArrowFunction is an arrow function literal.
	KindArrowFunction

	// KindMethod is a method shorthand in an object literal or class body.
	KindMethod

	// KindCallExpression is a call, the callee is field "function".
	KindCallExpression

	// KindMemberExpression is a non-computed member access, the member is field "property".
	KindMemberExpression

	// KindIdentifier is a plain or property identifier.
	KindIdentifier

	// KindAwaitExpression is an await expression.
	KindAwaitExpression

	// KindVariableDeclarator binds field "name" to field "value".
	KindVariableDeclarator

	// KindPair is a "key: value" property of an object literal.
	KindPair

	// KindObject is an object literal.
	KindObject

	// KindArguments is the argument list of a call.
	KindArguments

	// KindParenthesized is a parenthesized expression.
	KindParenthesized

	// KindComment is a line or block comment.
	KindComment

	// KindError marks source the grammar could not parse.
	KindError
)

// IsFunction reports whether nodes of this kind open a function scope.
func (k Kind) IsFunction() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction, KindMethod:
		return true

	default:
		return false
	}
}

// kindOf maps grammar node types to their [Kind].
var kindOf = map[string]Kind{
	"program":                        KindProgram,
	"function_declaration":           KindFunctionDeclaration,
	"generator_function_declaration": KindFunctionDeclaration,
	"function":                       KindFunctionExpression, // tree-sitter-javascript < 0.21
	"function_expression":            KindFunctionExpression,
	"generator_function":             KindFunctionExpression,
	"arrow_function":                 KindArrowFunction,
	"method_definition":              KindMethod,
	"call_expression":                KindCallExpression,
	"member_expression":              KindMemberExpression,
	"identifier":                     KindIdentifier,
	"property_identifier":            KindIdentifier,
	"shorthand_property_identifier":  KindIdentifier,
	"await_expression":               KindAwaitExpression,
	"variable_declarator":            KindVariableDeclarator,
	"pair":                           KindPair,
	"object":                         KindObject,
	"arguments":                      KindArguments,
	"parenthesized_expression":       KindParenthesized,
	"comment":                        KindComment,
	"ERROR":                          KindError,
}

// KindOf returns the [Kind] of a grammar node type.
func KindOf(typ string) Kind {
	return kindOf[typ] // KindOther is the zero value
}
