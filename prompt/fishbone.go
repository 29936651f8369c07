package prompt

// DOTPrefix is the literal every generated diagram must start with.
const DOTPrefix = "digraph Fishbone"

// DefaultCategoryHint lists the classic cause-analysis viewpoints used when
// the caller supplies no hint of its own.
const DefaultCategoryHint = "people, equipment, material, method, environment, measurement"

func GetFishbonePrompt(productName, failureMode, categoryHint string) string {
	if categoryHint == "" {
		categoryHint = DefaultCategoryHint
	}

	return `Create a cause-and-effect diagram (fishbone / Ishikawa diagram) for the failure mode "` + failureMode + `" of the product "` + productName + `", written in the Graphviz DOT language.

First, identify 3 to 6 major cause categories (the big bones) most relevant to this failure mode, drawing on common cause-analysis viewpoints (for example: ` + categoryHint + `). Give the categories concrete names that make their relation to the failure mode obvious.
Then, for each major category, list 3 to 4 specific contributing factors (the middle and small bones) that belong to it.

The final output must be DOT code only. No explanations or preamble.

Example DOT structure:
` + "```dot" + `
digraph Fishbone {
    rankdir=LR; // draw left to right
    node [shape=box, style=rounded, fontname="sans-serif"]; // default node style
    edge [arrowhead=vee];

    // Failure mode (head of the spine)
    FailureMode [label="` + failureMode + `", shape=ellipse, style="filled,rounded", fillcolor=lightcoral, fontsize=16];

    // Major categories (big bones) - name and label each category you identified
    // e.g. MajorCategory1 [label="<display name of category 1>", shape=plaintext, fontsize=14];
    //      MajorCategory2 [label="<display name of category 2>", shape=plaintext, fontsize=14];

    // Connect every major category to the failure mode
    // e.g. MajorCategory1 -> FailureMode;
    //      MajorCategory2 -> FailureMode;

    // Contributing factors (middle and small bones) attached to each category
    // e.g. Factor1_1 [label="<specific factor 1 of category 1>"];
    //      Factor1_2 [label="<specific factor 2 of category 1>"];
    //      Factor1_1 -> MajorCategory1;
    //      Factor1_2 -> MajorCategory1;

    // Add concrete factors for every category you identified.
    // Node IDs (e.g. MajorCategory1, Factor1_1) must be unique and alphanumeric.
}
` + "```" + `

Using the structure above, generate the concrete fishbone DOT code for the failure "` + failureMode + `" of the product "` + productName + `".
The FailureMode label must be exactly "` + failureMode + `"; set every other factor appropriately.
Output only DOT code starting with ` + DOTPrefix + ` { and nothing else.`
}
