package analyzer

import (
	"encoding/json"
	"fmt"
)

// basePrompt instructs the vision model how to read the canvas and what shape
// to answer in. The reply must be a JSON array of {expr, result, assign}
// objects so the handler can pass it straight through to the client.
const basePrompt = `You have been given an image with some mathematical expressions, equations, or graphical problems, and you need to solve them.
Note: Use the PEMDAS rule for solving mathematical expressions. PEMDAS stands for the Priority Order: Parentheses, Exponents, Multiplication and Division (from left to right), Addition and Subtraction (from left to right).
You can have five types of equations/expressions in this image, and only one case shall apply every time:
1. Simple mathematical expressions like 2 + 2, 3 * 4, 5 / 6: solve and return the answer as a JSON array with one object, like [{"expr": "2 + 2", "result": 4}].
2. A set of equations like x^2 + 2x + 1 = 0 or x + y = 10: solve for the given variables and return a JSON array with one object per variable, each with "assign": true.
3. Variable assignments like x = 4 or y = 5: assign the values and return each as an object with "assign": true.
4. Graphical math problems, such as word problems drawn as figures (collisions, triangles, trigonometry): pay close attention to colors and details, solve, and return one object with the answer in "result".
5. Abstract concepts drawn in the image, like love, hate, patriotism, or a historic reference: return one object where "expr" explains the drawing and "result" is the abstract concept.
Return strictly a JSON array of objects with the keys "expr", "result" and optional "assign". Do not use backticks or markdown formatting in your answer. Properly quote all keys and string values.`

// buildPrompt appends the caller's variable assignments to the base prompt
func buildPrompt(vars map[string]any) (string, error) {
	varsJSON, err := json.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("failed to encode variable mapping: %w", err)
	}

	return fmt.Sprintf(
		"%s\nHere is a dictionary of user-assigned variables. If the expression contains any of these variables, substitute their values accordingly: %s",
		basePrompt, string(varsJSON),
	), nil
}
