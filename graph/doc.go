/*package graph composes algebra values into scenes: named nodes wired into a
DAG and evaluated at a point in time. Scenes are stored as YAML.
*/
package graph
